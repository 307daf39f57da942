package textapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/dmitrymomot/strkit/pkg/b64json"
	"github.com/dmitrymomot/strkit/pkg/binder"
	"github.com/dmitrymomot/strkit/pkg/querystring"
	"github.com/dmitrymomot/strkit/pkg/strtemplate"
	"github.com/dmitrymomot/strkit/pkg/strutil"
)

var errBodyTooLarge = errors.New("request body too large")

type parameterRequest struct {
	URL  string `query:"url"`
	Name string `query:"name"`
}

type parameterResponse struct {
	Value string `json:"value"`
	Found bool   `json:"found"`
}

func (s *Service) queryParameter(w http.ResponseWriter, r *http.Request) {
	req, err := binder.ParseQueryString[parameterRequest](r.URL.RawQuery)
	if err != nil {
		s.fail(w, r, "query.parameter", err)
		return
	}

	value, found := querystring.Parameter(req.URL, req.Name)
	writeData(w, parameterResponse{Value: value, Found: found})
}

type parametersRequest struct {
	URL string `query:"url"`
}

type parametersResponse struct {
	Parameters map[string]string `json:"parameters"`
	Keys       []string          `json:"keys"`
	Found      bool              `json:"found"`
}

func (s *Service) queryParameters(w http.ResponseWriter, r *http.Request) {
	req, err := binder.ParseQueryString[parametersRequest](r.URL.RawQuery)
	if err != nil {
		s.fail(w, r, "query.parameters", err)
		return
	}

	params, found := querystring.Parameters(req.URL)
	resp := parametersResponse{Parameters: params, Found: found}
	if found {
		resp.Keys = querystring.Keys(req.URL)
	}
	writeData(w, resp)
}

type resultResponse struct {
	Result string `json:"result"`
}

func (s *Service) template(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	raw := query["value"]
	values := make([]any, len(raw))
	for i, v := range raw {
		if v != "" {
			values[i] = v
		}
	}

	writeData(w, resultResponse{Result: strtemplate.Build(query.Get("template"), values...)})
}

type combinedIDResponse struct {
	ID string `json:"id"`
}

func (s *Service) combinedID(w http.ResponseWriter, r *http.Request) {
	writeData(w, combinedIDResponse{ID: strutil.CombinedID(r.URL.Query()["key"]...)})
}

type emailRequest struct {
	Email string `query:"email"`
}

type domainResponse struct {
	Domain string `json:"domain"`
	Found  bool   `json:"found"`
}

func (s *Service) emailDomain(w http.ResponseWriter, r *http.Request) {
	req, err := binder.ParseQueryString[emailRequest](r.URL.RawQuery)
	if err != nil {
		s.fail(w, r, "email.domain", err)
		return
	}

	domain, found := strutil.DomainFromEmail(req.Email)
	writeData(w, domainResponse{Domain: domain, Found: found})
}

type urlsResponse struct {
	URLs  []string `json:"urls"`
	Found bool     `json:"found"`
}

func (s *Service) extractURLs(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, "urls.extract", err)
		return
	}

	urls, found := strutil.ExtractURLs(body)
	if urls == nil {
		urls = []string{}
	}
	writeData(w, urlsResponse{URLs: urls, Found: found})
}

func (s *Service) decodeBase64JSON(w http.ResponseWriter, r *http.Request) {
	body, err := s.readBody(w, r)
	if err != nil {
		s.fail(w, r, "b64json.decode", err)
		return
	}

	payload, err := b64json.Decode[any](body)
	if err != nil {
		s.fail(w, r, "b64json.decode", err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Data: map[string]any{"payload": payload}})
}

func (s *Service) readBody(w http.ResponseWriter, r *http.Request) (string, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodySize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return "", errBodyTooLarge
		}
		return "", err
	}
	return string(data), nil
}
