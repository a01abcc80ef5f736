// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides identity helpers for the external sign-in flow.

The OAuth handshake itself happens outside this service. Once a user has
signed in, the client passes the user's email as the author identity on every
consideration request, and the sign-in callback upserts the user via POST /users.

# Author Identity

	email, err := auth.NormalizeEmail(raw)
	if errors.Is(err, auth.ErrMissingIdentity) {
		// 401 on create, 400 on reads and deletes
	}

Surrounding whitespace is trimmed; the address is otherwise kept verbatim.

# User IDs

Users created without a provider id get a random UUIDv4:

	id := auth.NewUserID()
*/
package auth
