package usecase

// TokenUsecase issues and verifies the stateless session tokens carried in
// the "token" cookie. Tokens are self-contained; there is no server-side
// session store or revocation list.
type TokenUsecase interface {
	// Issue signs the caller-supplied payload together with an expiration
	// timestamp and returns the compact token string.
	Issue(payload map[string]interface{}) (string, error)

	// Verify checks the signature and expiration and returns the original
	// payload. It fails with ErrTokenExpired or ErrTokenInvalid.
	Verify(token string) (map[string]interface{}, error)
}
