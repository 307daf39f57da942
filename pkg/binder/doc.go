// Package binder populates structs from URL query strings.
//
// ParseQueryString decodes an application/x-www-form-urlencoded query (a
// leading '?' is allowed) and assigns every key that names a writable field
// of the target struct. Field names are matched case-insensitively, so
// "page_size=20", "Page_Size=20" and "PAGE_SIZE=20" all reach the same field.
//
// # Basic Usage
//
//	type SearchRequest struct {
//	    Query    string `query:"q"`
//	    Page     int
//	    PageSize int    `query:"page_size"`
//	    Archived bool
//	    Owner    uuid.UUID
//	    Since    *time.Time
//	    Tags     []string // ?tags=go&tags=web or ?tags=go,web
//	    Internal string   `query:"-"` // never bound
//	}
//
//	req, err := binder.ParseQueryString[SearchRequest]("?q=saas&page=2&archived=yes")
//	if err != nil {
//	    // errors.Is(err, binder.ErrInvalidFormat) for unconvertible values
//	}
//
// Fields without a matching key keep their zero value, and keys without a
// matching field are ignored. A key with an empty value is treated as absent.
//
// # Supported Types
//
//   - string, bool and all integer and float kinds
//   - time.Duration (time.ParseDuration) and time.Time (RFC 3339)
//   - uuid.UUID
//   - any type implementing encoding.TextUnmarshaler
//   - pointers to the above, allocated on demand
//   - slices of the above, from repeated keys or comma-separated values
//
// # Error Handling
//
//   - ErrInvalidArgument: the query string is empty or blank
//   - ErrInvalidTarget: the target is not a non-nil pointer to a struct
//   - ErrInvalidFormat: the query is malformed or a value does not convert
//   - ErrUnsupportedType: a matched field has a type the binder cannot set
//
// # Caching
//
// Field lookup tables are computed once per struct type and shared by all
// goroutines. Binding itself holds no shared state.
package binder
