package ports

// IDGenerator produces unique, time-ordered numeric identifiers. Feed
// ordering relies on ids of posts created later comparing greater.
type IDGenerator interface {
	NextID() int64
}
