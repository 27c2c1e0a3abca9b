package classifier

import (
	"strings"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"github.com/jonesrussell/school-cluster/internal/domain"
	"github.com/jonesrussell/school-cluster/internal/logger"
)

// clusterKeyword binds a location keyword to the cluster it indicates.
type clusterKeyword struct {
	keyword string
	cluster domain.Cluster
}

// Keywords are checked as substrings of "{name} {municipality}" lowered.
// Priority is fixed: Inabanga keywords win over Tubigon keywords when both
// match, and Clarin is the default bucket with no keywords of its own.
var clusterKeywords = []clusterKeyword{
	{"inabanga", domain.ClusterInabanga},
	{"dagohoy", domain.ClusterInabanga},
	{"tubigon", domain.ClusterTubigon},
	{"cawayanan", domain.ClusterTubigon},
	{"cabulijan", domain.ClusterTubigon},
}

// RuleClassifier is the deterministic keyword fallback. It has no external
// dependencies and never fails.
type RuleClassifier struct {
	matcher   *ahocorasick.Matcher
	kwCluster []domain.Cluster
	logger    logger.Logger
}

// NewRuleClassifier builds the Aho-Corasick automaton over the cluster
// keywords. The automaton is immutable after construction.
func NewRuleClassifier(log logger.Logger) *RuleClassifier {
	keywords := make([]string, 0, len(clusterKeywords))
	kwCluster := make([]domain.Cluster, 0, len(clusterKeywords))
	for _, ck := range clusterKeywords {
		keywords = append(keywords, ck.keyword)
		kwCluster = append(kwCluster, ck.cluster)
	}

	if log != nil {
		log.Info("rule classifier initialized",
			logger.Int("keywords", len(keywords)))
	}

	return &RuleClassifier{
		matcher:   ahocorasick.NewStringMatcher(keywords),
		kwCluster: kwCluster,
		logger:    log,
	}
}

// Classify assigns a cluster by keyword membership. Total: records with no
// keyword hits fall into the default Clarin bucket.
func (r *RuleClassifier) Classify(rec domain.SchoolRecord) domain.Cluster {
	text := strings.ToLower(rec.Name + " " + rec.Municipality)

	var matched [domain.ClusterCount]bool
	for _, hit := range r.matcher.Match([]byte(text)) {
		if hit < len(r.kwCluster) {
			matched[r.kwCluster[hit]] = true
		}
	}

	switch {
	case matched[domain.ClusterInabanga]:
		return domain.ClusterInabanga
	case matched[domain.ClusterTubigon]:
		return domain.ClusterTubigon
	default:
		return domain.ClusterClarin
	}
}
