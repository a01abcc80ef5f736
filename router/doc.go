// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the consideration vault API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, m)

# Endpoints

Operational:

	GET /health  - Liveness probe, plain "OK"
	GET /metrics - Prometheus exposition
	GET /        - API banner

Considerations (scoped to the caller's email):

	POST   /considerations      - Save a new record with all eight assessments
	GET    /considerations      - List the caller's records
	GET    /considerations/{id} - Fetch one record
	DELETE /considerations/{id} - Delete a record and its assessments

Users:

	POST /users - Record a signed-in user
	GET  /users - List known users

Every API route is wrapped in request logging and the Prometheus request
middleware, labelled with its route pattern.
*/
package router
