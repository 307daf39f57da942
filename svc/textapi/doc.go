// Package textapi exposes the strkit string primitives over HTTP.
//
// Service.Handle returns a chi router that can be mounted anywhere:
//
//	r := chi.NewRouter()
//	r.Mount("/api", textapi.New(log).Handle())
//
// Routes:
//
//	GET  /query/parameter?url=...&name=...  single parameter lookup
//	GET  /query/parameters?url=...          all parameters of an absolute URL
//	GET  /template?template=...&value=...   positional placeholder fill; an
//	                                        empty value counts as nil
//	GET  /combined-id?key=...&key=...       ":" joined identifier
//	GET  /email/domain?email=...            domain part of an e-mail address
//	POST /urls                              URLs found in the text body
//	POST /b64json/decode                    base64 JSON body decoded
//	GET  /health                            liveness probe
//
// Responses are JSON objects with either a "data" or an "error" member.
// Lookups that find nothing answer 200 with "found": false. Invalid input
// answers 400, anything else 500.
//
// Every request passes through requestid.Middleware; build the logger with
// requestid.LoggerExtractor to correlate the access log with the response
// header.
package textapi
