package config

// CronJob pairs a schedule with a job function.
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds statically configured jobs. The shipped jobs register
// themselves through cron.Register in warehouse.GO/cron/jobs; add
// entries here only for one-off wiring.
var CronJobs = map[string]CronJob{}
