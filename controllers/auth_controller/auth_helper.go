package auth_controller

import (
	"crypto/rand"
	"math/big"
	"os"

	"github.com/gin-gonic/gin"
)

const cookieMaxAge = 24 * 60 * 60

// setAuthCookie attaches the session token as an HttpOnly cookie. The
// token is also returned in the body for clients that prefer the
// Authorization header.
func setAuthCookie(c *gin.Context, token string) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", token, cookieMaxAge, "/", "", isProd, true)
}

func clearAuthCookie(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	c.SetCookie("auth_token", "", -1, "/", "", isProd, true)
}

const referralAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateReferralCode builds an 8-character code. Ambiguous characters
// are left out of the alphabet.
func generateReferralCode() string {
	code := make([]byte, 8)
	max := big.NewInt(int64(len(referralAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			code[i] = referralAlphabet[0]
			continue
		}
		code[i] = referralAlphabet[n.Int64()]
	}
	return string(code)
}
