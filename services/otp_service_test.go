package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genzsoft/ant2025-storefront-backend/config"
)

func setupTestRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	config.RedisClient = redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func wrongCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

func TestIssueAndVerifyOTP(t *testing.T) {
	setupTestRedis(t)

	code, err := IssueOTP("01700000001")
	require.NoError(t, err)
	require.Len(t, code, 6)

	assert.ErrorIs(t, VerifyOTP("01700000001", wrongCode(code)), ErrOTPInvalid)
	assert.NoError(t, VerifyOTP("01700000001", code))

	// Code is consumed on success
	assert.ErrorIs(t, VerifyOTP("01700000001", code), ErrOTPInvalid)
}

func TestIssueOTPThrottlesResend(t *testing.T) {
	setupTestRedis(t)

	_, err := IssueOTP("01700000002")
	require.NoError(t, err)

	_, err = IssueOTP("01700000002")
	assert.ErrorIs(t, err, ErrOTPThrottled)
}

func TestRevokeOTPLiftsThrottle(t *testing.T) {
	setupTestRedis(t)

	code, err := IssueOTP("01700000003")
	require.NoError(t, err)

	// Delivery failed: the code is revoked and a retry must not have to
	// wait out the resend window.
	RevokeOTP("01700000003")

	assert.ErrorIs(t, VerifyOTP("01700000003", code), ErrOTPInvalid)

	_, err = IssueOTP("01700000003")
	assert.NoError(t, err)
}

func TestVerifyOTPBurnsCodeAfterTooManyAttempts(t *testing.T) {
	setupTestRedis(t)

	code, err := IssueOTP("01700000004")
	require.NoError(t, err)

	for i := 0; i < otpMaxTries-1; i++ {
		assert.ErrorIs(t, VerifyOTP("01700000004", wrongCode(code)), ErrOTPInvalid)
	}
	assert.ErrorIs(t, VerifyOTP("01700000004", wrongCode(code)), ErrOTPTooMany)

	// Correct code no longer works once burned
	assert.ErrorIs(t, VerifyOTP("01700000004", code), ErrOTPInvalid)
}
