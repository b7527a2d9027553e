package remember

// File is the unit of data flowing through a pipeline stage.
//
// Implementations carry their own contents; the cache never inspects or
// mutates them. It stores File values as given and replays them verbatim.
//
// Path is the file's current path and the primary cache key. History is
// the ordered sequence of paths the file has previously been known by,
// most commonly a single element equal to Path. A file renamed or derived
// upstream may report several prior paths; each of them becomes a
// secondary lookup key for ForgetUsingHistory. An empty History is
// treated as the single-element sequence containing only Path.
type File interface {
	Path() string
	History() []string
}
