package model

import "io"

// UpdateProfileDTO carries the mutable profile fields. Password is the
// submitted plaintext; the profile service decides whether it actually
// changed by verifying it against the stored hash.
type UpdateProfileDTO struct {
	Username string
	Password string
	Avatar   *AvatarUpload
}

// AvatarUpload is a pending avatar file. The service generates the stored
// name; FileName is only used as a readable suffix.
type AvatarUpload struct {
	FileName string
	Content  io.Reader
}
