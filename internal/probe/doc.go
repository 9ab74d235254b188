// Package probe implements the readiness check against the backend's health
// endpoint.
//
// # Overview
//
// A probe is a single synchronous HTTP GET against the backend's
// /api/health endpoint, classified into one of three states:
//
//   - Ready: any 2xx response; the backend finished initializing
//   - NotReady: any non-2xx response; the server is up but still booting
//     (typically running database migrations)
//   - TransportError: no response at all; the listener is not up yet
//
// TransportError carries the underlying error text for logging but is
// handled identically to NotReady by the readiness loop: a backend that has
// not opened its port yet and one that is mid-migration both just need more
// time.
//
// # Usage
//
//	p := probe.NewHTTP(probe.Endpoint{Host: "127.0.0.1", Port: 4000})
//	result := p.Check(ctx)
//	if result.Ok() {
//		// backend is serving
//	}
//
// Probers are stateless and never retry; the retry loop lives in the
// readiness package.
package probe
