package views

// ArtifactType identifies an output artifact for schema/name lookups.
// This file is the single source of truth for per-sample file names,
// so the controller and any downstream loader agree without sharing
// string literals.
type ArtifactType int

const (
	ArtifactSimUx ArtifactType = iota
	ArtifactSimUy
	ArtifactIncidentUx
	ArtifactIncidentUy
	ArtifactMeta
	ArtifactHeatmapUx
	ArtifactHeatmapUy
)

var artifactFiles = map[ArtifactType]string{
	ArtifactSimUx:      "sim_ux.csv",
	ArtifactSimUy:      "sim_uy.csv",
	ArtifactIncidentUx: "incident_ux.csv",
	ArtifactIncidentUy: "incident_uy.csv",
	ArtifactMeta:       "meta.json",
	ArtifactHeatmapUx:  "ux_heatmap.png",
	ArtifactHeatmapUy:  "uy_heatmap.png",
}

// FileName returns the canonical per-sample file name for an artifact.
func (a ArtifactType) FileName() string {
	if n, ok := artifactFiles[a]; ok {
		return n
	}
	return "unknown"
}

// SamplesIndexFile is the batch-level index of every sample produced.
const SamplesIndexFile = "samples.csv"

// TimingsFile records per-stage wall-clock durations for the batch.
const TimingsFile = "timings.json"
