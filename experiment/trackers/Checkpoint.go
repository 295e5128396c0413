package trackers

import (
	"fmt"

	"github.com/samuelfneumann/tdcontrol/experiment"
)

// Checkpoint saves a tracker to a new file every few episodes, so that
// the data of a long experiment survives an interrupted run. A
// Checkpoint should be logged to after the tracker it saves.
type Checkpoint struct {
	saver    Saver
	interval int
	filename func() string
	err      error
}

// NewCheckpoint returns a Checkpoint which saves s every n episodes to
// the file named by filename.
//
// If each checkpoint should be saved in a separate file with an
// incremented number as a suffix (e.g. file1.bin, file2.bin, ...), use
// FilenameEnumerator to generate filename.
func NewCheckpoint(s Saver, n int, filename func() string) (*Checkpoint,
	error) {
	if n < 1 {
		return nil, fmt.Errorf("newCheckpoint: interval must be positive: "+
			"have(%d)", n)
	}
	return &Checkpoint{saver: s, interval: n, filename: filename}, nil
}

// LogEpisode implements the experiment.Logger interface
func (c *Checkpoint) LogEpisode(i int, _ experiment.Episode) {
	if (i+1)%c.interval != 0 {
		return
	}
	if err := c.saver.Save(c.filename()); err != nil && c.err == nil {
		c.err = err
	}
}

// Err returns the first error encountered while saving
func (c *Checkpoint) Err() error {
	return c.err
}

// fileEnumerator enumerates filenames
type fileEnumerator struct {
	i         int
	name      string
	extension string
}

// filename returns the name of the next consecutive enumerated file
func (f *fileEnumerator) filename() string {
	f.i++
	return fmt.Sprintf("%v%v%v", f.name, f.i, f.extension)
}

// FilenameEnumerator returns a function which returns filenames with
// a counter integer suffix. Each time the returned function is called,
// the counter is one higher than on the previous call, starting at
// start+1.
func FilenameEnumerator(start int, filename, extension string) func() string {
	enum := fileEnumerator{i: start, name: filename, extension: extension}
	return enum.filename
}
