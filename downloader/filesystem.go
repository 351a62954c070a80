package downloader

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Filesystem caches responses in a single JSON file, keyed by URL.
// A full snapshot fetch makes one request per line plus one per
// route section, so the cache keeps a rerun against unchanged data
// entirely offline.
type Filesystem struct {
	Path    string
	Records map[string]fsRecord

	mutex sync.Mutex
}

type fsRecord struct {
	Body        string `json:"body"`
	RetrievedAt string `json:"retrieved_at"`
}

func NewFilesystem(path string) (*Filesystem, error) {
	fs := &Filesystem{
		Path:    path,
		Records: map[string]fsRecord{},
	}

	err := fs.load()
	if err != nil {
		return nil, err
	}

	return fs, nil
}

func (f *Filesystem) Get(
	ctx context.Context,
	url string,
	headers map[string]string,
	options GetOptions,
) ([]byte, error) {

	if options.Cache {
		body, found, err := f.cached(url, options)
		if err != nil {
			return nil, err
		}
		if found {
			return body, nil
		}
	}

	// The mutex only guards the record map. Concurrent requests for
	// the same uncached URL may each hit the network; last write wins.
	body, err := HTTPGet(ctx, url, headers, options)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}

	if options.Cache {
		if err := f.store(url, body); err != nil {
			return nil, err
		}
	}

	return body, nil
}

func (f *Filesystem) cached(url string, options GetOptions) ([]byte, bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	record, found := f.Records[url]
	if !found {
		return nil, false, nil
	}

	retrievedAt, err := time.Parse(time.RFC3339, record.RetrievedAt)
	if err != nil {
		return nil, false, err
	}
	if options.CacheTTL != 0 && !retrievedAt.Add(options.CacheTTL).After(time.Now()) {
		return nil, false, nil
	}

	body, err := base64.StdEncoding.DecodeString(record.Body)
	if err != nil {
		return nil, false, fmt.Errorf("decoding: %w", err)
	}

	return body, true, nil
}

func (f *Filesystem) store(url string, body []byte) error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	f.Records[url] = fsRecord{
		Body:        base64.StdEncoding.EncodeToString(body),
		RetrievedAt: time.Now().UTC().Format(time.RFC3339),
	}

	err := f.save()
	if err != nil {
		return fmt.Errorf("saving: %w", err)
	}

	return nil
}

func (f *Filesystem) load() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	_, err := os.Stat(f.Path)
	if os.IsNotExist(err) {
		return nil
	}

	buf, err := os.ReadFile(f.Path)
	if err != nil {
		return fmt.Errorf("reading: %w", err)
	}

	err = json.Unmarshal(buf, &f.Records)
	if err != nil {
		return fmt.Errorf("unmarshalling: %w", err)
	}

	return nil
}

func (f *Filesystem) save() error {
	buf, err := json.Marshal(f.Records)
	if err != nil {
		return fmt.Errorf("marshalling: %w", err)
	}

	err = os.WriteFile(f.Path, buf, 0644)
	if err != nil {
		return fmt.Errorf("writing: %w", err)
	}

	return nil
}
