package server

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bastiangx/wordfix/pkg/config"
	"github.com/bastiangx/wordfix/pkg/dictionary"
	"github.com/bastiangx/wordfix/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func encodeRequests(t *testing.T, reqs ...Request) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	for _, r := range reqs {
		require.NoError(t, enc.Encode(r))
	}
	return &buf
}

func newTestServer(words ...string) *Server {
	dict := dictionary.LoadWords(words...)
	return NewServer(suggest.NewCachedCorrector(dict, 16), config.DefaultConfig(), "")
}

func TestServeSuggest(t *testing.T) {
	srv := newTestServer("cat", "cat", "cat", "cat", "cat", "bat", "bat", "bat", "bat", "bat", "hat", "hello", "dog")
	in := encodeRequests(t,
		Request{ID: "1", Word: "xat"},
		Request{ID: "2", Action: ActionSuggest, Word: "HELLO"},
		Request{ID: "3", Word: "zzzzzzzzzz"},
	)
	var out bytes.Buffer
	require.NoError(t, srv.Serve(in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	assert.Equal(t, "ready", ready.Status)

	var r1, r2, r3 SuggestResponse
	require.NoError(t, dec.Decode(&r1))
	require.NoError(t, dec.Decode(&r2))
	require.NoError(t, dec.Decode(&r3))

	assert.Equal(t, "1", r1.ID)
	assert.Equal(t, "bat", r1.Word)
	assert.Equal(t, "corrected", r1.Outcome)
	assert.Equal(t, 1, r1.Distance)
	assert.Equal(t, 5, r1.Frequency)

	assert.Equal(t, "hello", r2.Word)
	assert.Equal(t, "exact", r2.Outcome)

	assert.Equal(t, "", r3.Word)
	assert.Equal(t, "none", r3.Outcome)
}

func TestServeRejectsInvalidWords(t *testing.T) {
	srv := newTestServer("word")
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnop"
	in := encodeRequests(t,
		Request{ID: "a", Word: ""},
		Request{ID: "b", Word: "c4t"},
		Request{ID: "c", Word: long},
		Request{ID: "d", Action: "explode"},
	)
	var out bytes.Buffer
	require.NoError(t, srv.Serve(in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))

	for _, id := range []string{"a", "b", "c", "d"} {
		var e SuggestError
		require.NoError(t, dec.Decode(&e))
		assert.Equal(t, id, e.ID)
		assert.Equal(t, 400, e.Code)
		assert.NotEmpty(t, e.Error)
	}
}

func TestServeDictInfoAndHealth(t *testing.T) {
	srv := newTestServer("ab", "ac", "b")
	in := encodeRequests(t,
		Request{ID: "h", Action: ActionHealth},
		Request{ID: "i", Action: ActionDictInfo},
		Request{ID: "r", Action: ActionReload},
	)
	var out bytes.Buffer
	require.NoError(t, srv.Serve(in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready, health StatusResponse
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&health))
	assert.Equal(t, "h", health.ID)
	assert.Equal(t, "ok", health.Status)

	var info DictionaryResponse
	require.NoError(t, dec.Decode(&info))
	assert.Equal(t, "ok", info.Status)
	assert.Equal(t, 3, info.Words)
	assert.Equal(t, 5, info.Nodes)

	var reload DictionaryResponse
	require.NoError(t, dec.Decode(&reload))
	assert.Equal(t, "error", reload.Status)
	assert.NotEmpty(t, reload.Error)
}

func TestServeReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("cat"), 0644))

	corrector := suggest.NewCachedCorrector(nil, 16)
	loader := dictionary.NewRuntimeLoader(path, dictionary.Options{}, corrector)
	_, err := loader.Reload()
	require.NoError(t, err)
	srv := NewServer(corrector, nil, "").WithReloader(loader)

	var out bytes.Buffer
	require.NoError(t, srv.Serve(encodeRequests(t, Request{ID: "1", Word: "cot"}), &out))

	require.NoError(t, os.WriteFile(path, []byte("cot cot"), 0644))
	require.NoError(t, srv.Serve(encodeRequests(t,
		Request{ID: "2", Action: ActionReload},
		Request{ID: "3", Word: "cot"},
	), &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	var before, after SuggestResponse
	var reload DictionaryResponse
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&before))
	require.NoError(t, dec.Decode(&ready))
	require.NoError(t, dec.Decode(&reload))
	require.NoError(t, dec.Decode(&after))

	assert.Equal(t, "cat", before.Word)
	assert.Equal(t, "corrected", before.Outcome)
	assert.Equal(t, "ok", reload.Status)
	assert.Equal(t, path, reload.Path)
	assert.Equal(t, 1, reload.Words)
	assert.Equal(t, 2, reload.Tokens)
	assert.Equal(t, 0, reload.Skipped)
	assert.NotZero(t, reload.LoadedAt)
	assert.Equal(t, "cot", after.Word)
	assert.Equal(t, "exact", after.Outcome)
	assert.Equal(t, 2, after.Frequency)
}

func TestServeBadFrame(t *testing.T) {
	srv := newTestServer("word")
	in := bytes.NewBuffer([]byte{0xc1}) // never used msgpack code
	var out bytes.Buffer
	assert.Error(t, srv.Serve(in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var e SuggestError
	require.NoError(t, dec.Decode(&e))
	assert.Equal(t, 400, e.Code)
}

func TestServeCacheInfo(t *testing.T) {
	srv := newTestServer("spell", "spelling", "spelling", "cat")
	in := encodeRequests(t,
		Request{ID: "1", Word: "speling"},
		Request{ID: "2", Word: "cot"},
		Request{ID: "3", Word: "speling"},
		Request{ID: "4", Action: ActionCacheInfo, Word: "sp"},
		Request{ID: "5", Action: ActionCacheInfo},
	)
	var out bytes.Buffer
	require.NoError(t, srv.Serve(in, &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	for i := 0; i < 3; i++ {
		var r SuggestResponse
		require.NoError(t, dec.Decode(&r))
	}

	var filtered, all CacheResponse
	require.NoError(t, dec.Decode(&filtered))
	require.NoError(t, dec.Decode(&all))

	assert.Equal(t, "4", filtered.ID)
	assert.True(t, filtered.Enabled)
	assert.Equal(t, 2, filtered.Entries)
	assert.Equal(t, 1, filtered.Hits)
	assert.Equal(t, 2, filtered.Misses)
	assert.Equal(t, []string{"speling"}, filtered.Queries)
	assert.Equal(t, []string{"cot", "speling"}, all.Queries)
}

func TestServeCacheInfoWithoutCache(t *testing.T) {
	srv := NewServer(suggest.NewCorrector(dictionary.LoadWords("cat")), nil, "")
	var out bytes.Buffer
	require.NoError(t, srv.Serve(encodeRequests(t, Request{ID: "c", Action: ActionCacheInfo}), &out))

	dec := msgpack.NewDecoder(&out)
	var ready StatusResponse
	require.NoError(t, dec.Decode(&ready))
	var info CacheResponse
	require.NoError(t, dec.Decode(&info))
	assert.False(t, info.Enabled)
	assert.Empty(t, info.Queries)
}
