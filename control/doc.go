// File: control/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package control provides the diagnostic surface around slot rings:
// a probe registry for live state inspection, a bounded event journal,
// a log-backed tracer and a counter registry. Nothing here sits on the
// acquisition hot path; rings stay silent unless a tracer is injected.
package control
