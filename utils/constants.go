package utils

import "time"

// TutorListCacheKey is the Redis key holding the cached tutor list.
const TutorListCacheKey = "tutors:all"

// TutorListCacheTTL is the time-to-live for the cached tutor list.
const TutorListCacheTTL = 30 * time.Second
