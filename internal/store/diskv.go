package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"github.com/ekinoz/happy/internal/model"
)

// Documents live at tenants/{appID}/users/{userID}/happyThings/{id}.
const collectionName = "happyThings"

// document is the on-disk shape. The id lives in the key, not the
// body, matching the store-assigns-the-id contract.
type document struct {
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type diskvStore struct {
	d      *diskv.Diskv
	prefix string // logical key prefix for this user's collection
	dir    string // absolute collection directory, for the watcher
	log    *zap.Logger
}

// Open returns a Store rooted at basePath for the given tenant and
// user. The collection directory is created eagerly so the live
// watcher always has something to attach to.
func Open(basePath, appID, userID string, log *zap.Logger) (Store, error) {
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if appID == "" || userID == "" {
		return nil, errors.New("store: app id and user id required")
	}
	if log == nil {
		log = zap.NewNop()
	}

	segments := []string{"tenants", segment(appID), "users", segment(userID), collectionName}
	dir := filepath.Join(append([]string{basePath}, segments...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure collection path: %w", err)
	}

	return &diskvStore{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			CacheSizeMax:      1024 * 1024, // 1MB
		}),
		prefix: strings.Join(segments, "/") + "/",
		dir:    dir,
		log:    log,
	}, nil
}

func (s *diskvStore) List(ctx context.Context) ([]model.Item, error) {
	items := make([]model.Item, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if !strings.HasPrefix(key, s.prefix) {
			continue
		}
		it, err := s.read(key)
		if err != nil {
			// A single unreadable document should not hide the rest.
			s.log.Warn("store: read document", zap.String("key", key), zap.Error(err))
			continue
		}
		items = append(items, it)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sortNewestFirst(items)
	return items, nil
}

func (s *diskvStore) Insert(ctx context.Context, text string) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Item{}, errors.New("store: empty text")
	}
	it := model.Item{
		ID:        ulid.Make().String(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(document{Text: it.Text, CreatedAt: it.CreatedAt})
	if err != nil {
		return model.Item{}, fmt.Errorf("store: marshal: %w", err)
	}
	if err := s.d.Write(s.prefix+it.ID, data); err != nil {
		return model.Item{}, fmt.Errorf("store: write: %w", err)
	}
	return it, nil
}

func (s *diskvStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if id == "" {
		return errors.New("store: id required")
	}
	if err := s.d.Erase(s.prefix + id); err != nil {
		return fmt.Errorf("store: erase %s: %w", id, err)
	}
	return nil
}

func (s *diskvStore) read(key string) (model.Item, error) {
	val, err := s.d.Read(key)
	if err != nil {
		return model.Item{}, err
	}
	var doc document
	if err := json.Unmarshal(val, &doc); err != nil {
		return model.Item{}, err
	}
	return model.Item{
		ID:        strings.TrimPrefix(key, s.prefix),
		Text:      doc.Text,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// sortNewestFirst orders by creation time descending; ULIDs are
// lexically time-ordered, so the id breaks ties the same way.
func sortNewestFirst(items []model.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		lt, rt := items[i].CreatedAt, items[j].CreatedAt
		if lt.Equal(rt) {
			return items[i].ID > items[j].ID
		}
		return lt.After(rt)
	})
}

// segment makes an id safe to use as a single path element.
func segment(s string) string {
	return url.PathEscape(s)
}

func keyToPathTransform(key string) *diskv.PathKey {
	parts := strings.Split(key, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pk *diskv.PathKey) string {
	return strings.Join(append(append([]string{}, pk.Path...), pk.FileName), "/")
}
