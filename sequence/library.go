// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sequence

import (
	"encoding/json"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/willf/bloom"

	"github.com/cybrota/treetrace/tree"
)

// ErrNotFound is returned when a saved sequence id is unknown.
var ErrNotFound = errors.New("sequence not found")

const (
	filterBits   = 1 << 14
	filterHashes = 5
)

// Saved is a named operation sequence kept in a Library.
type Saved struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Variant     tree.Variant     `json:"variant,omitempty"`
	Operations  []Operation[int] `json:"operations"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

// Update lists the fields to change on a saved sequence. Nil fields are
// left alone.
type Update struct {
	Name        *string
	Description *string
	Operations  []Operation[int]
}

// Library is a file-backed collection of saved sequences. Every mutation is
// written through to the file. A bloom filter over the ids answers most
// misses without touching the index.
type Library struct {
	path      string
	sequences []Saved
	index     map[string]int
	filter    *bloom.BloomFilter

	now func() time.Time
	rng *rand.Rand
}

// OpenLibrary loads the library stored at path. A missing file is an empty
// library; it is created on the first write.
func OpenLibrary(path string) (*Library, error) {
	l := &Library{
		path: path,
		now:  time.Now,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	l.reindex()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return l, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading sequence library %s", path)
	}
	if len(data) == 0 {
		return l, nil
	}
	if err := json.Unmarshal(data, &l.sequences); err != nil {
		return nil, malformed(errors.Wrapf(err, "decoding sequence library %s", path))
	}
	l.reindex()
	return l, nil
}

// reindex rebuilds the id index and the filter. Bloom filters cannot forget
// members, so removals go through here.
func (l *Library) reindex() {
	l.index = make(map[string]int, len(l.sequences))
	l.filter = bloom.New(filterBits, filterHashes)
	for i, s := range l.sequences {
		l.index[s.ID] = i
		l.filter.AddString(s.ID)
	}
}

func (l *Library) newID() string {
	for {
		id := "seq-" + strconv.FormatInt(l.now().UnixMilli(), 10) + "-" + strconv.FormatInt(l.rng.Int63n(1<<40), 36)
		if _, taken := l.index[id]; !taken {
			return id
		}
	}
}

func (l *Library) add(s Saved) {
	l.index[s.ID] = len(l.sequences)
	l.sequences = append(l.sequences, s)
	l.filter.AddString(s.ID)
}

func (l *Library) lookup(id string) (int, bool) {
	if !l.filter.TestString(id) {
		return 0, false
	}
	i, ok := l.index[id]
	return i, ok
}

// Save stores a new sequence and returns its id.
func (l *Library) Save(name, description string, v tree.Variant, ops []Operation[int]) (string, error) {
	if err := validateOperations(ops); err != nil {
		return "", err
	}
	now := l.now()
	s := Saved{
		ID:          l.newID(),
		Name:        name,
		Description: description,
		Variant:     v,
		Operations:  slices.Clone(ops),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if s.Operations == nil {
		s.Operations = []Operation[int]{}
	}
	l.add(s)
	return s.ID, l.flush()
}

// Get returns the sequence with the given id.
func (l *Library) Get(id string) (Saved, bool) {
	i, ok := l.lookup(id)
	if !ok {
		return Saved{}, false
	}
	return l.sequences[i], true
}

// Update changes a saved sequence in place and bumps its UpdatedAt.
func (l *Library) Update(id string, u Update) error {
	i, ok := l.lookup(id)
	if !ok {
		return errors.Wrapf(ErrNotFound, "updating %s", id)
	}
	if u.Operations != nil {
		if err := validateOperations(u.Operations); err != nil {
			return err
		}
		l.sequences[i].Operations = slices.Clone(u.Operations)
	}
	if u.Name != nil {
		l.sequences[i].Name = *u.Name
	}
	if u.Description != nil {
		l.sequences[i].Description = *u.Description
	}
	l.sequences[i].UpdatedAt = l.now()
	return l.flush()
}

// Delete removes a sequence. It reports false when id is unknown.
func (l *Library) Delete(id string) (bool, error) {
	i, ok := l.lookup(id)
	if !ok {
		return false, nil
	}
	l.sequences = slices.Delete(l.sequences, i, i+1)
	l.reindex()
	return true, l.flush()
}

// Duplicate copies a sequence under a fresh id. An empty name yields
// "<original> (copy)".
func (l *Library) Duplicate(id, name string) (string, error) {
	i, ok := l.lookup(id)
	if !ok {
		return "", errors.Wrapf(ErrNotFound, "duplicating %s", id)
	}
	s := l.sequences[i]
	if name == "" {
		name = s.Name + " (copy)"
	}
	now := l.now()
	s.ID = l.newID()
	s.Name = name
	s.Operations = slices.Clone(s.Operations)
	s.CreatedAt, s.UpdatedAt = now, now
	l.add(s)
	return s.ID, l.flush()
}

// List returns all sequences in insertion order.
func (l *Library) List() []Saved {
	return slices.Clone(l.sequences)
}

func (l *Library) Len() int {
	return len(l.sequences)
}

// Export writes every sequence as a JSON array.
func (l *Library) Export(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	seqs := l.sequences
	if seqs == nil {
		seqs = []Saved{}
	}
	return errors.Wrap(enc.Encode(seqs), "exporting sequences")
}

// Import appends the sequences of an exported JSON array. Entries without
// an id or a name, or with unknown operation types, are skipped. Ids that
// collide with existing ones are reassigned; the colliding entries are kept.
// It returns the number imported.
func (l *Library) Import(r io.Reader) (int, error) {
	var in []Saved
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return 0, malformed(errors.Wrap(err, "decoding sequences"))
	}
	n := 0
	for _, s := range in {
		if s.ID == "" || s.Name == "" || s.Operations == nil || validateOperations(s.Operations) != nil {
			continue
		}
		if _, taken := l.index[s.ID]; taken {
			s.ID = l.newID()
		}
		l.add(s)
		n++
	}
	if n == 0 {
		return 0, malformed(errors.New("no valid sequences to import"))
	}
	return n, l.flush()
}

// Clear removes every sequence.
func (l *Library) Clear() error {
	l.sequences = nil
	l.reindex()
	return l.flush()
}

// flush writes the library through a temporary file so a crash never leaves
// a truncated library behind.
func (l *Library) flush() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Wrapf(err, "creating directory for %s", l.path)
	}
	seqs := l.sequences
	if seqs == nil {
		seqs = []Saved{}
	}
	data, err := json.MarshalIndent(seqs, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding sequence library")
	}
	tmp := l.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", tmp)
	}
	return errors.Wrapf(os.Rename(tmp, l.path), "replacing %s", l.path)
}
