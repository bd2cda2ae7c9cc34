package chrome

// unixEpochOffset is the number of seconds between 1601-01-01 (Chrome's
// timestamp origin) and 1970-01-01 (Unix epoch).
const unixEpochOffset = 11644473600

// TimeToUnix converts a Chrome timestamp (microseconds since 1601-01-01)
// to Unix epoch seconds. Zero or negative input is treated as "no expiry"
// and maps to 0, the session-cookie sentinel in Netscape cookie files.
// Values predating 1970 convert to negative seconds and are passed through
// unclamped.
func TimeToUnix(micros int64) int64 {
	if micros <= 0 {
		return 0
	}
	return micros/1_000_000 - unixEpochOffset
}
