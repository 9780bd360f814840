package config

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

// CronJobs holds config-declared jobs. Jobs that need the gateway register
// themselves through cron.Register from init() instead.
var CronJobs = map[string]CronJob{
	// Add more jobs here
}
