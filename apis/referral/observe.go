package referral

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"referral_backend/config"
)

var referralCreatedCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prometheus.BuildFQName(config.AppName, "referral", "created"),
})

var referralStoreFailureCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prometheus.BuildFQName(config.AppName, "referral", "store_failure"),
})

var referralMailFailureCounter = promauto.NewCounter(prometheus.CounterOpts{
	Name: prometheus.BuildFQName(config.AppName, "referral", "mail_failure"),
})

var referralMailDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    prometheus.BuildFQName(config.AppName, "referral", "mail_duration_seconds"),
	Buckets: prometheus.DefBuckets,
})
