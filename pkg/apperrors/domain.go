package apperrors

import "net/http"

// Predefined errors for the account and gig domains.

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrMissingRefreshToken = New(
	CodeUnauthorized,
	"auth",
	"Unauthorized request",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Account with this email already exists",
	http.StatusConflict,
)

var ErrClientNotFound = New(
	CodeNotFound,
	"client",
	"Client not found",
	http.StatusNotFound,
)

var ErrFreelancerNotFound = New(
	CodeNotFound,
	"freelancer",
	"Freelancer not found",
	http.StatusNotFound,
)

var ErrGigNotFound = New(
	CodeNotFound,
	"gig",
	"Gig not found",
	http.StatusNotFound,
)

var ErrResumeRequired = New(
	CodeValidationFailed,
	"validation",
	"Resume file is required",
	http.StatusBadRequest,
)
