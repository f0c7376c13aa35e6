package onboarding

// SlugAvailability is the advisory result of a slug check. Unknown covers
// both "not checked yet" and "check in flight"; the authoritative collision
// check happens again at commit time.
type SlugAvailability string

const (
	SlugUnknown   SlugAvailability = "UNKNOWN"
	SlugAvailable SlugAvailability = "AVAILABLE"
	SlugTaken     SlugAvailability = "TAKEN"
)

// SlugCheck tracks the latest slug availability result for a wizard
// session. Checks are issued with monotonically increasing sequence numbers
// so a slow response for an old slug can never overwrite the result for the
// current one.
type SlugCheck struct {
	seq    uint64
	slug   string
	result SlugAvailability
}

// NewSlugCheck returns a check in the Unknown state.
func NewSlugCheck() *SlugCheck {
	return &SlugCheck{result: SlugUnknown}
}

// Begin records that a check for slug is starting and returns the sequence
// number the eventual result must carry. Any in-flight result for a prior
// sequence becomes stale. An empty slug resets to Unknown.
func (c *SlugCheck) Begin(slug string) uint64 {
	c.seq++
	c.slug = slug
	c.result = SlugUnknown
	return c.seq
}

// Complete applies a check result. Results for a stale sequence are
// discarded and the call reports false.
func (c *SlugCheck) Complete(seq uint64, available bool) bool {
	if seq != c.seq {
		return false
	}
	if available {
		c.result = SlugAvailable
	} else {
		c.result = SlugTaken
	}
	return true
}

// Slug returns the slug the current result refers to.
func (c *SlugCheck) Slug() string { return c.slug }

// Result returns the latest availability result.
func (c *SlugCheck) Result() SlugAvailability { return c.result }
