// internal/platform/config/help.go
package config

import (
	"fmt"
	"io"
	"runtime"
)

const crackerHelp = `
owaspkit cracker - hash pre-image recovery

USAGE:
  cracker -H <hex digest> [options]

IMPORTANT:
  Use double dash (--) for long flag names: --hash, --mode, --wordlist
  Use single dash (-) for short flags: -H, -m, -w

HASH OPTIONS:
  -H, --hash string          Target digest in hex (required)
  -a, --algorithm string     Hash algorithm (default: sha1, see --list-algorithms)
  -s, --salt string          Salt appended to every candidate before hashing

MODE OPTIONS:
  -m, --mode string          table, dictionary or bruteforce (default: bruteforce)
  -j, --workers int          Concurrent workers (default: 4)
  -T, --timeout int          Global timeout in seconds, 0=no timeout (default: 0)

SOURCE OPTIONS:
  --table string             plaintext:hash table, .txt/.zip/SQLite (default: rainbow_table.txt)
  -w, --wordlist string      Wordlist, .txt or .zip (default: rockyou.txt)
  --archive-password string  Password for encrypted .zip resources
  -c, --charset string       Brute-force charset or preset (default: a-z0-9)
                             Presets: @digits @lower @upper @special @all
  -l, --max-len int          Brute-force maximum length (default: 5)

OUTPUT OPTIONS:
  -o, --out string           Write the result as JSON to this file
  -q, --quiet                Print only the plaintext (or "no match found")
  -v, --verbose              Debug logging

INFO:
  --config string            YAML configuration file
  --list-algorithms          List supported algorithms and exit
  --version                  Print version information and exit
  -h, --help                 Show this help message

EXAMPLES:
  Brute-force a salted SHA-1:
    cracker -H 9f3c... -s pepper -c @lower -l 4

  Dictionary attack with 8 workers:
    cracker -H 5f4dcc3b5aa765d61d8327deb882cf99 -a md5 -m dictionary -w rockyou.txt -j 8

  Precomputed table inside an encrypted zip:
    cracker -H 1a1dc91c... -m table --table tables.zip --archive-password s3cret

ENVIRONMENT VARIABLES:
  Every option can be set with the OWASPKIT_ prefix:

  OWASPKIT_HASH, OWASPKIT_ALGORITHM, OWASPKIT_SALT, OWASPKIT_MODE,
  OWASPKIT_TABLE, OWASPKIT_WORDLIST, OWASPKIT_ARCHIVE_PASSWORD,
  OWASPKIT_CHARSET, OWASPKIT_MAX_LEN, OWASPKIT_WORKERS, OWASPKIT_TIMEOUT,
  OWASPKIT_OUTPUT_FILE, OWASPKIT_QUIET, OWASPKIT_VERBOSE, OWASPKIT_CONFIG
  OWASPKIT_LOG_LEVEL=debug|info|warn|error

  Precedence: flags > environment > config file > defaults.

EXIT CODES:
  0 match found, 1 no match, 2 configuration or resource error, 3 canceled
`

const enumeratorHelp = `
owaspkit enumerator - broken access control probe

USAGE:
  enumerator -u 'http://host/api/items/{}' [options]

REQUEST OPTIONS:
  -u, --url string             URL with the {} payload placeholder
                               (default: http://127.0.0.1:5000/api/items/{})
  -X, --method string          HTTP method (default: GET)
  -d, --data string            Request body, may contain {}
  -H, --header 'Key: value'    Extra header, repeatable
  -t, --request-timeout dur    Per-request timeout (default: 5s)
  -i, --interval dur           Minimum delay between requests (default: 0)
  --retries int                Retries per request (default: 0)
  --follow-redirects           Follow 3xx responses
  --breaker-threshold int      Consecutive transport failures that abort the run (default: 5)

PAYLOAD OPTIONS (names > payloads > range):
  --start int                  First id (default: 1)
  --end int                    Last id, inclusive (default: 20)
  -p, --payloads string        Payload file, .txt or .zip
  --payloads-password string   Password for an encrypted payload zip
  -n, --names strings          Comma separated payloads

RUN OPTIONS:
  -j, --workers int            Concurrent requests (default: 10)
  -T, --timeout int            Global timeout in seconds, 0=no timeout (default: 0)

OUTPUT OPTIONS:
  -o, --out string             CSV file, empty to disable (default: results.csv)
  -b, --save-body              Add the response body to the CSV
  -q, --quiet                  No progress output
  -v, --verbose                Debug logging

INFO:
  --config string              YAML configuration file
  --version                    Print version information and exit
  -h, --help                   Show this help message

ENVIRONMENT VARIABLES:
  OWASPKIT_URL, OWASPKIT_METHOD, OWASPKIT_BODY, OWASPKIT_HEADERS (one per line),
  OWASPKIT_REQUEST_TIMEOUT, OWASPKIT_INTERVAL, OWASPKIT_RETRIES,
  OWASPKIT_START, OWASPKIT_END, OWASPKIT_PAYLOADS, OWASPKIT_NAMES,
  OWASPKIT_WORKERS, OWASPKIT_TIMEOUT, OWASPKIT_CSV, OWASPKIT_SAVE_BODY,
  OWASPKIT_QUIET, OWASPKIT_VERBOSE, OWASPKIT_CONFIG

  Precedence: flags > environment > config file > defaults.
`

const testServerHelp = `
owaspkit testserver - deliberately vulnerable HTTP fixture

USAGE:
  testserver [options]

OPTIONS:
  -a, --addr string          Listen address (default: 127.0.0.1:5000)
  --accessible-from int      First id answered with 200 (default: 1)
  --accessible-to int        Last id answered with 200 (default: 10)
  --forbidden-from int       First id answered with 403 (default: 11)
  --forbidden-to int         Last id answered with 403 (default: 20)
  --files-dir string         Directory served under /files/ (default: built-in samples)
  -v, --verbose              Debug logging
  --config string            YAML configuration file
  --version                  Print version information and exit

ROUTES:
  GET /api/items/{id}        200 JSON, 403 or 404 depending on the id
  GET /files/{name}          File lookup without authorization checks
`

// PrintCrackerHelp escribe la ayuda de cmd/cracker.
func PrintCrackerHelp(w io.Writer) {
	fmt.Fprint(w, crackerHelp)
}

// PrintEnumeratorHelp escribe la ayuda de cmd/enumerator.
func PrintEnumeratorHelp(w io.Writer) {
	fmt.Fprint(w, enumeratorHelp)
}

// PrintTestServerHelp escribe la ayuda de cmd/testserver.
func PrintTestServerHelp(w io.Writer) {
	fmt.Fprint(w, testServerHelp)
}

// PrintVersion prints version information.
func PrintVersion(w io.Writer, tool, version, commit, date string) {
	fmt.Fprintf(w, "owaspkit %s %s\n", tool, version)
	fmt.Fprintf(w, "  Commit:  %s\n", commit)
	fmt.Fprintf(w, "  Built:   %s\n", date)
	fmt.Fprintf(w, "  Go:      %s\n", runtime.Version())
}
