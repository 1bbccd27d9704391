// core/genome/table.go
package genome

// Table maps raw declared tokens to canonical assembly names.
// Built once at startup; never mutated afterwards, so a single Table is
// safe to share across concurrent resolutions.
type Table map[string]string

// Resolve applies accession normalization and looks the token up.
func (t Table) Resolve(token string) (string, bool) {
	name, ok := t[NormalizeAccession(token)]
	return name, ok
}

// Merge returns a copy of t with extra entries layered on top.
// Overlay entries win on key collision; t itself is left untouched.
func (t Table) Merge(extra map[string]string) Table {
	out := make(Table, len(t)+len(extra))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// GRCh37 flavor names seen in submitted metadata: patch releases, the
// 1000 Genomes repackagings, and their decoy builds.
var grch37Flavors = []string{
	"GRCh37.p13",
	"GRCh37-lite",
	"human_g1k_v37",
	"human_g1k_v37_decoy",
	"hs37",
}

// RefSeq chromosome accessions at GRCh37.p13 versions (chr1–22, X, Y).
var grch37Chromosomes = []string{
	"NC_000001.10", "NC_000002.11", "NC_000003.11", "NC_000004.11",
	"NC_000005.9", "NC_000006.11", "NC_000007.13", "NC_000008.10",
	"NC_000009.11", "NC_000010.10", "NC_000011.9", "NC_000012.11",
	"NC_000013.10", "NC_000014.8", "NC_000015.9", "NC_000016.9",
	"NC_000017.10", "NC_000018.9", "NC_000019.9", "NC_000020.10",
	"NC_000021.8", "NC_000022.10", "NC_000023.10", "NC_000024.9",
}

// RefSeq chromosome accessions at GRCh38 versions (chr1–22, X, Y).
var grch38Chromosomes = []string{
	"NC_000001.11", "NC_000002.12", "NC_000003.12", "NC_000004.12",
	"NC_000005.10", "NC_000006.12", "NC_000007.14", "NC_000008.11",
	"NC_000009.12", "NC_000010.11", "NC_000011.10", "NC_000012.12",
	"NC_000013.11", "NC_000014.9", "NC_000015.10", "NC_000016.10",
	"NC_000017.11", "NC_000018.10", "NC_000019.10", "NC_000020.11",
	"NC_000021.9", "NC_000022.11", "NC_000023.11", "NC_000024.10",
}

// Assembly-level accessions (GenBank GCA / RefSeq GCF).
var (
	grch37Assemblies = []string{"GCA_000001405.1", "GCF_000001405.13"}
	grch38Assemblies = []string{"GCA_000001405.15", "GCF_000001405.26"}
)

// Default builds the built-in synonym table. Chromosome-level GenBank
// accessions (CM000663.1 and friends) are handled by NormalizeAccession
// and are intentionally absent here.
func Default() Table {
	t := Table{
		GRCh37: GRCh37,
		GRCh38: GRCh38,
		HS37D5: HS37D5,
		HG17:   HG17,
		"hg19": GRCh37,
	}
	for _, raw := range grch37Flavors {
		t[raw] = GRCh37
	}
	for _, raw := range grch37Chromosomes {
		t[raw] = GRCh37
	}
	for _, raw := range grch37Assemblies {
		t[raw] = GRCh37
	}
	for _, raw := range grch38Chromosomes {
		t[raw] = GRCh38
	}
	for _, raw := range grch38Assemblies {
		t[raw] = GRCh38
	}
	return t
}
