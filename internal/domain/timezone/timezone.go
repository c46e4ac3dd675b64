package timezone

import (
	"archive/zip"
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/weekday-api/internal/domain"
	log "github.com/sirupsen/logrus"
)

// zoneNamesList holds every IANA zone and link name of tzdata 2025b, so the
// index works on hosts without any zoneinfo tree.
//
//go:embed zone_names.txt
var zoneNamesList string

// Same search path the runtime uses when loading zones.
var zoneinfoDirs = []string{
	"/usr/share/zoneinfo/",
	"/usr/share/lib/zoneinfo/",
	"/usr/lib/locale/TZ/",
	"/etc/zoneinfo/",
}

var (
	zoneIndexOnce sync.Once
	zoneIndex     map[string]string // lowercase name -> canonical name
)

// Resolve loads name, or fallback when name is blank.
func Resolve(name, fallback string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return Load(fallback)
	}
	return Load(name)
}

// Load looks an IANA zone name up case-insensitively.
func Load(name string) (*time.Location, error) {
	return load(name, zoneNames())
}

func load(name string, index map[string]string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if err := checkZoneName(name); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTimezone, err)
	}

	loc, err := time.LoadLocation(name)
	if err == nil {
		return loc, nil
	}

	for _, candidate := range zoneCandidates(name, index) {
		if candidate == name {
			continue
		}
		if l, cerr := time.LoadLocation(candidate); cerr == nil {
			return l, nil
		}
	}

	return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTimezone, err)
}

func checkZoneName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("empty time zone name")
	case strings.EqualFold(name, "local"),
		strings.HasPrefix(name, "/"),
		strings.Contains(name, ".."),
		strings.Contains(name, `\`):
		return fmt.Errorf("unknown time zone %s", name)
	}
	return nil
}

// zoneCandidates lists spellings worth trying after an exact lookup failed:
// the indexed canonical name first, then casing guesses.
func zoneCandidates(name string, index map[string]string) []string {
	var out []string
	if canonical, ok := index[strings.ToLower(name)]; ok {
		out = append(out, canonical)
	}

	segments := strings.Split(name, "/")
	titled := make([]string, len(segments))
	for i, seg := range segments {
		titled[i] = titleSegment(seg)
	}
	out = append(out, strings.Join(titled, "/"), strings.ToUpper(name))

	if len(segments) > 1 {
		// Etc/GMT+5, US/... style: prefix titled, remainder upper-cased.
		out = append(out, titled[0]+"/"+strings.ToUpper(strings.Join(segments[1:], "/")))
	}
	return out
}

func titleSegment(seg string) string {
	var b strings.Builder
	upper := true
	for _, r := range strings.ToLower(seg) {
		if upper {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteRune(r)
		}
		upper = r == '_' || r == '-'
	}
	return b.String()
}

func zoneNames() map[string]string {
	zoneIndexOnce.Do(func() {
		zoneIndex = buildZoneIndex(zoneSources())
		log.WithField("zones", len(zoneIndex)).Debug("timezone index built")
	})
	return zoneIndex
}

func zoneSources() []string {
	var sources []string
	if env := os.Getenv("ZONEINFO"); env != "" {
		sources = append(sources, env)
	}
	sources = append(sources, zoneinfoDirs...)
	return append(sources, filepath.Join(runtime.GOROOT(), "lib", "time", "zoneinfo.zip"))
}

// buildZoneIndex indexes the given zoneinfo directories and zip files, then
// the embedded name list. Earlier sources win on spelling.
func buildZoneIndex(sources []string) map[string]string {
	index := make(map[string]string)
	for _, src := range sources {
		var err error
		if strings.HasSuffix(src, ".zip") {
			err = indexZip(index, src)
		} else {
			err = indexDir(index, src)
		}
		if err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("source", src).Debug("could not index zoneinfo source")
		}
	}

	scanner := bufio.NewScanner(strings.NewReader(zoneNamesList))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			addZone(index, name)
		}
	}
	return index
}

func addZone(index map[string]string, name string) {
	key := strings.ToLower(name)
	if _, exists := index[key]; !exists {
		index[key] = name
	}
}

func indexDir(index map[string]string, root string) error {
	if _, err := os.Stat(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			// leap-second and POSIX duplicates of the main tree
			if rel == "posix" || rel == "right" {
				return filepath.SkipDir
			}
			return nil
		}
		if isTZif(path) {
			addZone(index, rel)
		}
		return nil
	})
}

func indexZip(index map[string]string, path string) error {
	r, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if !strings.HasSuffix(f.Name, "/") {
			addZone(index, f.Name)
		}
	}
	return nil
}

func isTZif(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		return false
	}
	return bytes.Equal(magic, []byte("TZif"))
}
