package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// FileDateFormat stamps the names of downloaded exports.
const FileDateFormat = "20060102"
