// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Incoming JSON uses camelCase keys:

  - CreateConsiderationRequest: authorEmail plus a ConsiderationForm
  - ConsiderationForm: basicInfo, the eight assessment blocks, overallNotes
  - DeleteConsiderationRequest: email
  - User: id (optional), email, name, image

# Response Types

  - CreateConsiderationResponse: success, id, message
  - SuccessResponse: success, message
  - UpsertUserResponse: success, id, message
  - ListUsersResponse: users
  - ErrorResponse: error, message, field

# Domain Types

Consideration is a stored record reassembled from its nine rows, rendered with
snake_case keys. Assessment fields are pointers so a missing row renders as
nulls. Each record also carries:

  - created_ago: humanized age of the record ("3 days ago")
  - average_rating: mean of every rating, one decimal

# Ratings

Rating is an integer from RatingMin (1) to RatingMax (5). Forms start at
RatingDefault (3).
*/
package models
