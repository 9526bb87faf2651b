package services

import (
	"context"
	"log"
	"net/url"
	"strings"
	"time"

	"github.com/traffbase/clickmap/models"
	"github.com/traffbase/clickmap/repositories"
)

// sourceParamKeys is the ordered fallback for locating the source in an
// inbound parameter bag; the first non-empty value wins
var sourceParamKeys = []string{"source", "domain", "referrer"}

// UnresolvedSubID is the literal stamped on redirects when no mapping was
// found. Downstream consumers require the parameter to always be present.
const UnresolvedSubID = "null"

// Resolution is the outcome of one lookup
type Resolution struct {
	Source string
	SubID  string
	Found  bool
}

// ResolveService answers point lookups for a source and records every
// attempt in the resolution log
type ResolveService interface {
	Resolve(ctx context.Context, params url.Values) (*Resolution, error)
	BuildRedirectURL(target string, params url.Values, subID string) string
	LogAttempt(entry *models.ResolutionLogEntry)
}

type resolveService struct {
	mappingRepo repositories.MappingRepository
	logRepo     repositories.ResolutionLogRepository
}

// NewResolveService creates a new resolve service
func NewResolveService(mappingRepo repositories.MappingRepository, logRepo repositories.ResolutionLogRepository) ResolveService {
	return &resolveService{
		mappingRepo: mappingRepo,
		logRepo:     logRepo,
	}
}

// ExtractSource pulls the traffic source out of an inbound parameter bag
// using the source -> domain -> referrer fallback. Returns "" when none of
// the keys carry a value.
func ExtractSource(params url.Values) string {
	for _, key := range sourceParamKeys {
		if value := strings.TrimSpace(params.Get(key)); value != "" {
			return value
		}
	}
	return ""
}

// Resolve looks up the sub id for the source indicated by the params. A bag
// with no source-indicating keys short-circuits: no store query is made and
// the resolution reports not found with an empty source.
func (s *resolveService) Resolve(ctx context.Context, params url.Values) (*Resolution, error) {
	source := ExtractSource(params)
	if source == "" {
		return &Resolution{}, nil
	}

	rec, err := s.mappingRepo.GetBySource(ctx, source)
	if err != nil {
		return &Resolution{Source: source}, err
	}

	if rec == nil || rec.SubID == "" {
		return &Resolution{Source: source}, nil
	}

	return &Resolution{Source: source, SubID: rec.SubID, Found: true}, nil
}

// BuildRedirectURL constructs the outbound redirect: every inbound parameter
// is carried over except the source-indicating keys, and sub_id is always
// set — to the resolved value, or the literal "null" when unresolved.
func (s *resolveService) BuildRedirectURL(target string, params url.Values, subID string) string {
	outbound := url.Values{}
	for key, values := range params {
		outbound[key] = append([]string(nil), values...)
	}

	for _, key := range sourceParamKeys {
		outbound.Del(key)
	}

	if subID == "" {
		subID = UnresolvedSubID
	}
	outbound.Set("sub_id", subID)

	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}

	return target + sep + outbound.Encode()
}

// LogAttempt writes a resolution log entry in the background. The caller's
// response has already been decided; a sink failure only reaches operator
// output and never the caller.
func (s *resolveService) LogAttempt(entry *models.ResolutionLogEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.logRepo.Create(ctx, entry); err != nil {
			log.Printf("Failed to write resolution log: %v", err)
		}
	}()
}
