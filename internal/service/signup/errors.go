package signup

import "errors"

// Orchestration errors. Validation failures are reported with the domain
// sentinels; these cover conflicts and external-call failures.
var (
	// ErrUsernameTaken is returned by the advisory pre-check and, after a
	// lost race, by the final insert against the unique constraint.
	ErrUsernameTaken = errors.New("username is already taken")

	// ErrEmailTaken indicates the identity service already has an account
	// for the submitted email address.
	ErrEmailTaken = errors.New("email is already registered")

	// ErrUsernameCheck indicates the username availability query failed.
	ErrUsernameCheck = errors.New("username availability check failed")

	// ErrIdentityService indicates the identity service call failed for a
	// reason other than a conflict.
	ErrIdentityService = errors.New("identity service error")

	// ErrImageUpload indicates storing the profile image failed, or the
	// object store produced no public URL for it.
	ErrImageUpload = errors.New("profile image upload failed")

	// ErrProfileCreation indicates the final profile insert failed.
	ErrProfileCreation = errors.New("profile creation failed")
)
