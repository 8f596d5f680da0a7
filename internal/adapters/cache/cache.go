// Package cache implements the file based build cache.
package cache

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/keel/internal/adapters/fs"
	"go.trai.ch/keel/internal/core/domain"
	"go.trai.ch/keel/internal/core/fingerprint"
	"go.trai.ch/keel/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildCache = (*FileBuildCache)(nil)

// keyLock guards one cache entry. The bracket serializes cache-or-run sequences
// for a key; rw separates readers from an in-progress store.
type keyLock struct {
	bracket chan struct{}
	rw      sync.RWMutex
}

// FileBuildCache stores build outputs together with the fingerprint they were built with.
//
// Each key owns a directory under the cache root holding the serialized fingerprint (.deps),
// an index of target relative paths (.names, one "root;path" line per output) and one
// content blob per indexed output, named after its line number.
type FileBuildCache struct {
	root       ports.Directory
	serializer ports.ProtocolSerializer
	ignorable  IgnorableOutputPolicy
	logger     ports.Logger
	metrics    ports.Metrics

	mu    sync.Mutex
	locks map[domain.BuildKey]*keyLock
}

// NewFileBuildCache creates a cache rooted at root. A nil policy ignores no failures.
func NewFileBuildCache(
	root ports.Directory,
	serializer ports.ProtocolSerializer,
	ignorable IgnorableOutputPolicy,
	logger ports.Logger,
	metrics ports.Metrics,
) *FileBuildCache {
	if ignorable == nil {
		ignorable = SuffixPolicy()
	}
	return &FileBuildCache{
		root:       root,
		serializer: serializer,
		ignorable:  ignorable,
		logger:     logger,
		metrics:    metrics,
		locks:      make(map[domain.BuildKey]*keyLock),
	}
}

func (c *FileBuildCache) lockFor(key domain.BuildKey) *keyLock {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[key]
	if !ok {
		l = &keyLock{bracket: make(chan struct{}, 1)}
		c.locks[key] = l
	}
	return l
}

// LockForBuilder implements ports.BuildCache.
func (c *FileBuildCache) LockForBuilder(ctx context.Context, key domain.BuildKey) error {
	l := c.lockFor(key)
	select {
	case l.bracket <- struct{}{}:
		return nil
	case <-ctx.Done():
		return zerr.With(zerr.Wrap(ctx.Err(), "failed to lock cache entry"), "key", key.String())
	}
}

// UnlockForBuilder implements ports.BuildCache.
func (c *FileBuildCache) UnlockForBuilder(key domain.BuildKey) error {
	l := c.lockFor(key)
	select {
	case <-l.bracket:
		return nil
	default:
		return zerr.With(zerr.Wrap(domain.ErrCacheLockNotHeld, "failed to unlock cache entry"), "key", key.String())
	}
}

// Contains implements ports.BuildCache.
func (c *FileBuildCache) Contains(key domain.BuildKey, fp domain.Fingerprint) bool {
	l := c.lockFor(key)
	l.rw.RLock()
	defer l.rw.RUnlock()

	name := key.DirName()
	if !c.root.Exists(name + "/" + domain.DepsFileName) {
		return false
	}

	stored, err := c.readFingerprint(name)
	if err != nil {
		c.logger.Warn("ignoring corrupt cache entry", "key", key.String(), "error", err.Error())
		c.metrics.CacheCorrupt()
		return false
	}

	if !fp.Equal(stored) {
		c.logger.Debug("fingerprint differs",
			"key", key.String(),
			"cached", fingerprint.Describe(stored),
			"current", fingerprint.Describe(fp),
		)
		return false
	}
	return true
}

func (c *FileBuildCache) readFingerprint(name string) (domain.Fingerprint, error) {
	r, err := c.root.OpenRead(name + "/" + domain.DepsFileName)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Read only

	p, err := c.serializer.Read(r)
	if err != nil {
		return nil, err
	}
	return fingerprint.FromProtocol(p)
}

// Restore implements ports.BuildCache. Files already present in targetRoot with the same
// size and checksum are left untouched. Index lines without a blob are returned as well.
func (c *FileBuildCache) Restore(key domain.BuildKey, targetRoot ports.Directory) (domain.TargetPathSet, error) {
	l := c.lockFor(key)
	l.rw.RLock()
	defer l.rw.RUnlock()

	result := domain.NewTargetPathSet()
	name := key.DirName()
	if !c.root.Exists(name + "/" + domain.NamesFileName) {
		return result, nil
	}

	entry, err := c.root.ChildDirectory(name, false)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error()), "key", key.String())
	}

	index, err := c.readIndex(entry)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error()), "key", key.String())
	}

	copied := 0
	for _, line := range index {
		out := line.output
		if entry.Exists(line.blob) {
			changed, err := copyIfDifferent(entry, line.blob, targetRoot, out.String())
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheRestoreFailed.Error()), "key", key.String())
			}
			if changed {
				copied++
			} else {
				c.logger.Debug("cached file is up to date", "path", out.String())
			}
		}
		result.Add(out)
	}

	c.metrics.FilesRestored(copied)
	return result, nil
}

// Store implements ports.BuildCache. It replaces any previous entry for key: the fingerprint
// is written first, then every output in sorted order. An output that cannot be copied aborts
// the store and removes the entry, unless the ignorable policy accepts it.
func (c *FileBuildCache) Store(
	key domain.BuildKey,
	fp domain.Fingerprint,
	outputs domain.TargetPathSet,
	sourceRoot ports.Directory,
) error {
	l := c.lockFor(key)
	l.rw.Lock()
	defer l.rw.Unlock()

	name := key.DirName()
	if err := c.store(name, fp, outputs, sourceRoot); err != nil {
		if rmErr := c.root.Remove(name); rmErr != nil {
			c.logger.Warn("failed to remove incomplete cache entry", "key", key.String(), "error", rmErr.Error())
		}
		return zerr.With(zerr.Wrap(err, domain.ErrCacheStoreFailed.Error()), "key", key.String())
	}

	c.metrics.CacheStored(key.Kind)
	return nil
}

func (c *FileBuildCache) store(
	name string,
	fp domain.Fingerprint,
	outputs domain.TargetPathSet,
	sourceRoot ports.Directory,
) error {
	if err := c.root.Remove(name); err != nil {
		return err
	}
	entry, err := c.root.ChildDirectory(name, true)
	if err != nil {
		return err
	}

	if err := c.writeFingerprint(entry, fp); err != nil {
		return err
	}

	var index bytes.Buffer
	line := 0
	for _, out := range outputs.Sorted() {
		if strings.Contains(out.RelativeRoot, ";") || strings.Contains(out.RelativePath, ";") {
			return zerr.With(zerr.New("output path contains the index separator"), "path", out.String())
		}

		blob := strconv.Itoa(line)
		if sourceRoot.Exists(out.String()) {
			if err := fs.CopyFile(sourceRoot, out.String(), entry, blob); err != nil {
				if !c.ignorable(out) {
					return err
				}
				c.logger.Warn("skipping unreadable output", "path", out.String(), "error", err.Error())
				if rmErr := entry.Remove(blob); rmErr != nil {
					return rmErr
				}
				continue
			}
		}

		_, _ = fmt.Fprintf(&index, "%s;%s\n", out.RelativeRoot, out.RelativePath)
		line++
	}

	w, err := entry.Create(domain.NamesFileName)
	if err != nil {
		return err
	}
	if _, err := w.Write(index.Bytes()); err != nil {
		_ = w.Close()
		return zerr.With(zerr.Wrap(err, "failed to write cache index"), "path", entry.Path())
	}
	return w.Close()
}

func (c *FileBuildCache) writeFingerprint(entry ports.Directory, fp domain.Fingerprint) error {
	w, err := entry.Create(domain.DepsFileName)
	if err != nil {
		return err
	}
	if err := c.serializer.Write(w, fp.Protocol()); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

type indexLine struct {
	blob   string
	output domain.TargetRelativePath
}

// readIndex parses the .names file. Malformed lines are skipped but keep their
// blob number.
func (c *FileBuildCache) readIndex(entry ports.Directory) ([]indexLine, error) {
	r, err := entry.OpenRead(domain.NamesFileName)
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Read only

	var lines []indexLine
	scanner := bufio.NewScanner(r)
	for n := 0; scanner.Scan(); n++ {
		root, rel, ok := strings.Cut(scanner.Text(), ";")
		if !ok || strings.Contains(rel, ";") {
			c.logger.Warn("skipping malformed cache index line", "path", entry.Path(), "line", n+1)
			continue
		}
		lines = append(lines, indexLine{
			blob:   strconv.Itoa(n),
			output: domain.NewTargetRelativePath(root, rel),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrCacheIndexCorrupt.Error())
	}
	return lines, nil
}

func copyIfDifferent(src ports.Directory, srcName string, dst ports.Directory, dstName string) (bool, error) {
	if dst.Exists(dstName) {
		srcStamp, err := fs.Stamp(src, srcName)
		if err != nil {
			return false, err
		}
		dstSize, err := dst.FileSize(dstName)
		if err != nil {
			return false, err
		}
		if dstSize == srcStamp.Size {
			dstSum, err := fs.ComputeFileHash(dst, dstName)
			if err != nil {
				return false, err
			}
			if dstSum == srcStamp.Checksum {
				return false, nil
			}
		}
	}
	return true, fs.CopyFile(src, srcName, dst, dstName)
}
