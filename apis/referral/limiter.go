package referral

import (
	"golang.org/x/time/rate"
	"referral_backend/config"
)

// nil means unlimited
var referralLimiter *rate.Limiter

func InitLimiter() {
	if config.Config.ReferralRateLimit > 0 {
		referralLimiter = rate.NewLimiter(
			rate.Limit(config.Config.ReferralRateLimit),
			config.Config.ReferralRateBurst,
		)
	} else {
		referralLimiter = nil
	}
}

func allowReferral() bool {
	return referralLimiter == nil || referralLimiter.Allow()
}
