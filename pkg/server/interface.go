/*
Package server implements msgpack IPC for spelling correction.

Clients write a stream of msgpack maps to stdin and read one msgpack map per
request from stdout. Every request carries an ID that is echoed back, and an
optional action selecting the operation. Requests are handled one at a time,
in order.

# IPC

On start the server writes a status message:

	{"status": "ready"}

A correction request needs only a word; the action defaults to "suggest":

	{"id": "req_001", "w": "speling"}

The response carries the input, the answer, how it was found and the time
taken in microseconds:

	{"id": "req_001", "i": "speling", "w": "spelling", "o": "corrected", "d": 1, "f": 7, "t": 212}

The outcome "o" is "exact" when the word is already in the dictionary, "corrected"
when a dictionary word within two edits was picked, and "none" when nothing
was found, in which case "w" is empty. "none" is an answer, not an error.

Dictionary requests report or refresh the loaded word list:

	{"id": "dict_001", "action": "dict_info"}
	{"id": "dict_002", "action": "reload"}

The result cache can be inspected; "w" filters the listed queries by prefix:

	{"id": "cache_001", "action": "cache_info", "w": "spe"}

Invalid requests (empty words, words over the configured length, non letters)
get an error message with a 400 code:

	{"id": "req_002", "e": "word must contain only letters: 'c4t'", "c": 400}
*/
package server

// Actions understood by the server.
const (
	ActionSuggest   = "suggest"
	ActionDictInfo  = "dict_info"
	ActionReload    = "reload"
	ActionHealth    = "health"
	ActionCacheInfo = "cache_info"
)

// Request is any client message. Action picks the operation.
type Request struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"`
	Word   string `msgpack:"w,omitempty"`
}

// SuggestResponse - correction response
type SuggestResponse struct {
	ID        string `msgpack:"id"`
	Input     string `msgpack:"i"`
	Word      string `msgpack:"w"`
	Outcome   string `msgpack:"o"`
	Distance  int    `msgpack:"d"`
	Frequency int    `msgpack:"f"`
	TimeTaken int64  `msgpack:"t"`
}

// DictionaryResponse - dictionary operation response.
// Tokens, Skipped and LoadedAt (unix seconds) describe the last successful
// load and are zero when the dictionary did not come from a file.
type DictionaryResponse struct {
	ID       string `msgpack:"id"`
	Status   string `msgpack:"status"`
	Error    string `msgpack:"error,omitempty"`
	Words    int    `msgpack:"words"`
	Nodes    int    `msgpack:"nodes"`
	Path     string `msgpack:"path,omitempty"`
	Tokens   int    `msgpack:"tokens,omitempty"`
	Skipped  int    `msgpack:"skipped,omitempty"`
	LoadedAt int64  `msgpack:"loaded_at,omitempty"`
}

// CacheResponse - result cache contents
type CacheResponse struct {
	ID      string   `msgpack:"id"`
	Enabled bool     `msgpack:"enabled"`
	Entries int      `msgpack:"entries"`
	Hits    int      `msgpack:"hits"`
	Misses  int      `msgpack:"misses"`
	Queries []string `msgpack:"queries"`
}

// StatusResponse - readiness and health replies
type StatusResponse struct {
	ID     string `msgpack:"id,omitempty"`
	Status string `msgpack:"status"`
}

// SuggestError holds basic error information for failed requests
type SuggestError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
