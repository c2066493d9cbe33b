// Package signup implements the registration workflow: validate the
// request, check username availability, create the account with the
// identity service, store the profile image, and insert the profile
// record. Completed steps are compensated in reverse order when a later
// step fails, so a reported failure never leaves partial state behind in
// the external systems.
package signup
