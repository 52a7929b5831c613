package utilcss

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	cmap "github.com/orcaman/concurrent-map/v2"
	ignore "github.com/sabhiram/go-gitignore"
)

// Language groups source file types by how class candidates appear in them.
type Language string

const (
	LangMarkup     Language = "markup"     // html, vue, svelte
	LangScript     Language = "script"     // js, jsx, ts, tsx
	LangTemplating Language = "templating" // templ, tmpl, erb, php, jinja
)

var languageByExt = map[string]Language{
	".html":   LangMarkup,
	".htm":    LangMarkup,
	".vue":    LangMarkup,
	".svelte": LangMarkup,

	".js":  LangScript,
	".jsx": LangScript,
	".ts":  LangScript,
	".tsx": LangScript,
	".mjs": LangScript,

	".templ":  LangTemplating,
	".tmpl":   LangTemplating,
	".gohtml": LangTemplating,
	".erb":    LangTemplating,
	".php":    LangTemplating,
	".jinja":  LangTemplating,
	".twig":   LangTemplating,
}

// DetectLanguage maps a file path to its scan language. Unknown extensions
// scan as markup, the most permissive mode.
func DetectLanguage(path string) Language {
	if l, ok := languageByExt[strings.ToLower(filepath.Ext(path))]; ok {
		return l
	}
	return LangMarkup
}

// extraction patterns per language. Capture group 1 is the attribute or
// argument content; the content is then split on whitespace into candidate
// classes. Over-capture is fine: unrecognized candidates compile to nothing.
var (
	markupPatterns = []*regexp.Regexp{
		regexp.MustCompile(`class="([^"]+)"`),
		regexp.MustCompile(`class='([^']+)'`),
		regexp.MustCompile(`class:list=\{([^}]+)\}`),
	}

	scriptPatterns = []*regexp.Regexp{
		regexp.MustCompile(`className="([^"]+)"`),
		regexp.MustCompile(`className='([^']+)'`),
		regexp.MustCompile("className=\\{`([^`]+)`\\}"),
		regexp.MustCompile(`(?:clsx|classNames|cn|cva)\(([^)]*)\)`),
		regexp.MustCompile(`class="([^"]+)"`),
	}

	templatingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`class="([^"]+)"`),
		regexp.MustCompile(`class='([^']+)'`),
		regexp.MustCompile(`templ\.Classes\(([^)]+)\)`),
		regexp.MustCompile(`templ\.KV\(\s*"([^"]+)"`),
	}

	lineCommentPattern = regexp.MustCompile(`^\s*(//|#|<!--)`)

	// candidateToken accepts anything a utility class can look like,
	// including modifiers, '!' prefix, and bracketed segments.
	candidateToken = regexp.MustCompile(`^!?[-a-zA-Z0-9:_./\[\]()%#]+$`)
)

func patternsFor(lang Language) []*regexp.Regexp {
	switch lang {
	case LangScript:
		return scriptPatterns
	case LangTemplating:
		return templatingPatterns
	default:
		return markupPatterns
	}
}

// ScanStats tracks what the file walk saw.
type ScanStats struct {
	FilesDiscovered int `json:"files_discovered"`
	FilesScanned    int `json:"files_scanned"`
	FilesSkipped    int `json:"files_skipped"`
	FilesFailed     int `json:"files_failed"`
}

// ScanResult is the outcome of a content scan: the deduplicated, sorted
// class candidates plus per-file diagnostics.
type ScanResult struct {
	Classes     []string
	Stats       ScanStats
	Diagnostics []Diagnostic
}

// Scanner walks content files and collects utility class candidates.
// Construct with NewScanner; the zero value has no patterns and finds
// nothing.
type Scanner struct {
	patterns []string
	workers  int
	ignorer  *ignore.GitIgnore
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithWorkers sets the number of concurrent file readers.
func WithWorkers(n int) ScannerOption {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithGitignore loads exclusion rules from the given .gitignore file.
// A missing file degrades gracefully to no filtering.
func WithGitignore(path string) ScannerOption {
	return func(s *Scanner) {
		gi, err := ignore.CompileIgnoreFile(path)
		if err != nil {
			return
		}
		s.ignorer = gi
	}
}

// NewScanner builds a scanner over the given doublestar glob patterns,
// e.g. "src/**/*.html" or "**/*.{tsx,templ}".
func NewScanner(patterns []string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		patterns: patterns,
		workers:  4,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shouldSkipFile applies two-layer filtering: generated-file suffixes first,
// then gitignore rules for relative paths.
func (s *Scanner) shouldSkipFile(path string) bool {
	if strings.HasSuffix(path, "_templ.go") || strings.HasSuffix(path, ".min.js") {
		return true
	}
	if s.ignorer != nil && !filepath.IsAbs(path) {
		return s.ignorer.MatchesPath(path)
	}
	return false
}

// expandGlobs expands the configured patterns to concrete file paths,
// deduplicating and filtering as it goes.
func (s *Scanner) expandGlobs() ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range s.patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("bad glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if s.shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			stats.FilesScanned++
		}
	}

	sort.Strings(files)
	return files, stats, nil
}

// Scan walks all matched files concurrently and returns the union of class
// candidates. Files that cannot be read produce warning diagnostics instead
// of failing the scan.
func (s *Scanner) Scan() (*ScanResult, error) {
	files, stats, err := s.expandGlobs()
	if err != nil {
		return nil, err
	}

	classes := cmap.New[struct{}]()
	var (
		mu    sync.Mutex
		diags []Diagnostic
	)

	jobs := make(chan string)
	var wg sync.WaitGroup
	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				found, err := scanFile(path)
				if err != nil {
					mu.Lock()
					diags = append(diags, Diagnostic{
						Severity: SeverityWarning,
						Source:   path,
						Message:  fmt.Sprintf("cannot read file: %v", err),
					})
					stats.FilesFailed++
					mu.Unlock()
					continue
				}
				for _, c := range found {
					classes.Set(c, struct{}{})
				}
			}
		}()
	}
	for _, f := range files {
		jobs <- f
	}
	close(jobs)
	wg.Wait()

	out := classes.Keys()
	sort.Strings(out)

	return &ScanResult{
		Classes:     out,
		Stats:       stats,
		Diagnostics: diags,
	}, nil
}

// scanFile extracts class candidates from one file, line by line.
func scanFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	patterns := patternsFor(DetectLanguage(path))
	var found []string

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if lineCommentPattern.MatchString(line) {
			continue
		}
		found = append(found, extractCandidates(line, patterns)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return found, nil
}

// extractCandidates runs the language's patterns over one line and splits
// every captured attribute value into candidate tokens.
func extractCandidates(line string, patterns []*regexp.Regexp) []string {
	var out []string
	for _, re := range patterns {
		for _, match := range re.FindAllStringSubmatch(line, -1) {
			if len(match) < 2 {
				continue
			}
			for _, token := range splitAttributeValue(match[1]) {
				if candidateToken.MatchString(token) {
					out = append(out, token)
				}
			}
		}
	}
	return out
}

// splitAttributeValue splits an attribute or argument blob into candidate
// tokens. Quoted fragments inside the blob (clsx arguments, templ.Classes
// lists) are unwrapped first.
func splitAttributeValue(value string) []string {
	value = strings.NewReplacer(`"`, " ", `'`, " ", ",", " ", "`", " ").Replace(value)
	return strings.Fields(value)
}
