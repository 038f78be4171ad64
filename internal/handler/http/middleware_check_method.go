// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// CheckHTTPMethod is registered with [chi.Mux.MethodNotAllowed].
//
// Chi calls it only when a path matches a route but the method does not, so
// it answers 404 instead of 405 and never re-dispatches the request.
// Unsupported methods do not reveal which paths exist.
func CheckHTTPMethod(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
