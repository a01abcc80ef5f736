// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the consideration vault API.

# Handler Types

Each handler is a struct holding the shared *store.Store:

  - ConsiderationHandler: create, list, fetch and delete considerations
  - UserHandler: record signed-in users and list them

	st := store.New(conn, cfg.TxTimeout, metrics)
	considerations := handlers.NewConsiderationHandler(st)

# Identity

There are no sessions. The caller's email is the tenant key and travels with
each request:

	POST   /considerations       → authorEmail in the body (401 when missing)
	GET    /considerations       → ?email= (400 when missing)
	GET    /considerations/{id}  → ?email= (400 when missing)
	DELETE /considerations/{id}  → email in the body (400 when missing)

A record owned by another email is indistinguishable from a missing one: both
return 404.

# Listing

GET /considerations accepts two optional parameters:

  - sort: "recent" (default, newest first) or "rating" (highest average first)
  - limit: positive integer cap on the number of records

# Error Mapping

Store errors map to status codes in one place:

  - *store.ValidationError → 400 with the offending field
  - store.ErrUnauthenticated → 401 on create, 400 elsewhere
  - store.ErrNotFound → 404
  - anything else → 500, logged with slog
*/
package handlers
