// Package client talks to the remote catalog API.
//
// Every fetch is a single GET. A 200 body is checked against a JSON Schema
// before it is mapped to domain records, so a body is either decoded whole or
// rejected with a *domain.DecodeError naming the offending fields. Non-200
// responses become *domain.TransportError and failures before any response
// (refused connections, timeouts) become *domain.NetworkError.
//
// Page links returned by the API are requested verbatim.
package client
