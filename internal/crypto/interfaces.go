// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns account passwords into self-describing hashes that
// are stored in the credentials section of the shared document.
//
// Hash produces an Argon2id hash in PHC string format:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
//
// Verify accepts both Argon2id hashes and bcrypt hashes ($2a$, $2b$, $2y$)
// written by earlier versions of the catalog.
type PasswordHasher interface {
	// Hash derives a new hash from password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed hash
	// is an error; a wrong password is (false, nil).
	Verify(password, encodedHash string) (bool, error)
}
