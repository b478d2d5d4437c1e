package services

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/genzsoft/ant2025-storefront-backend/config"
)

const (
	otpTTL        = 5 * time.Minute
	otpResendWait = 60 * time.Second
	otpMaxTries   = 5
)

var (
	ErrOTPThrottled = errors.New("an OTP was sent recently, wait before requesting another")
	ErrOTPInvalid   = errors.New("invalid or expired code")
	ErrOTPTooMany   = errors.New("too many wrong attempts, request a new code")
)

func otpKey(phone string) string     { return "otp:" + phone }
func otpLockKey(phone string) string { return "otp:resend:" + phone }
func otpTryKey(phone string) string  { return "otp:tries:" + phone }

// IssueOTP generates a 6-digit code for the phone and stores it in
// Redis for 5 minutes. Re-issuing is throttled to once a minute.
func IssueOTP(phone string) (string, error) {
	ok, err := config.RedisClient.SetNX(config.Ctx, otpLockKey(phone), 1, otpResendWait).Result()
	if err != nil {
		return "", err
	}
	if !ok {
		return "", ErrOTPThrottled
	}

	code, err := randomCode()
	if err != nil {
		return "", err
	}

	pipe := config.RedisClient.TxPipeline()
	pipe.Set(config.Ctx, otpKey(phone), code, otpTTL)
	pipe.Del(config.Ctx, otpTryKey(phone))
	if _, err := pipe.Exec(config.Ctx); err != nil {
		return "", err
	}
	return code, nil
}

// RevokeOTP discards an issued code together with its resend lock and
// attempt counter. Called when delivery fails so the user can request
// a new code right away instead of waiting out the throttle.
func RevokeOTP(phone string) {
	config.RedisClient.Del(config.Ctx, otpKey(phone), otpLockKey(phone), otpTryKey(phone))
}

// VerifyOTP checks the submitted code and consumes it on success.
// After otpMaxTries wrong attempts the code is burned.
func VerifyOTP(phone, code string) error {
	stored, err := config.RedisClient.Get(config.Ctx, otpKey(phone)).Result()
	if errors.Is(err, redis.Nil) {
		return ErrOTPInvalid
	}
	if err != nil {
		return err
	}

	if stored != code {
		tries, err := config.RedisClient.Incr(config.Ctx, otpTryKey(phone)).Result()
		if err == nil && tries == 1 {
			config.RedisClient.Expire(config.Ctx, otpTryKey(phone), otpTTL)
		}
		if tries >= otpMaxTries {
			config.RedisClient.Del(config.Ctx, otpKey(phone), otpTryKey(phone))
			return ErrOTPTooMany
		}
		return ErrOTPInvalid
	}

	config.RedisClient.Del(config.Ctx, otpKey(phone), otpTryKey(phone))
	return nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
