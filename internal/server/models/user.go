package models

import "time"

// User is the owning identity of refresh token families. Credential
// verification happens upstream; this subsystem only needs the id.
type User struct {
	ID        string
	CreatedAt time.Time
}
