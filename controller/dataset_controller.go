package controller

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"windcrop/models"
	"windcrop/services/gridder"
	"windcrop/services/ingest"
	"windcrop/services/resample"
	"windcrop/utils"
	"windcrop/views"
)

// DatasetController turns one angle's slice CSV into a labeled sample
// directory: scattered table → rectilinear field → rotated crop +
// incident reference → four raster CSVs, meta.json and (optionally)
// heatmap PNGs. It holds no mutable state, so one instance serves all
// batch workers concurrently.
type DatasetController struct {
	cfg utils.DatasetConfig
}

func NewDatasetController(cfg utils.DatasetConfig) *DatasetController {
	return &DatasetController{cfg: cfg}
}

// ProcessSlice builds a full sample from a slice table. Errors wrap
// the configuration context (angle, path) so the batch stage can
// skip-and-continue with a useful log line.
func (dc *DatasetController) ProcessSlice(slicePath string, angleDeg float64, sampleDir string) (*models.SampleMeta, error) {
	samples, err := ingest.NewSliceReader(slicePath).Read()
	if err != nil {
		return nil, fmt.Errorf("angle %g: %w", angleDeg, err)
	}

	field, err := gridder.New(dc.cfg.Grid.Nx, dc.cfg.Grid.Ny).Grid(samples)
	if err != nil {
		return nil, fmt.Errorf("angle %g: grid %s: %w", angleDeg, slicePath, err)
	}

	crop := dc.cfg.Crop
	frame := models.NewLocalFrame(crop.CenterX, crop.CenterY, angleDeg)

	cropped, err := resample.Crop(field, frame, crop.Width, crop.Height, crop.Nx, crop.Ny)
	if err != nil {
		return nil, fmt.Errorf("angle %g: crop: %w", angleDeg, err)
	}

	incident, err := resample.Incident(dc.cfg.InflowSpeed, frame, crop.Nx, crop.Ny)
	if err != nil {
		return nil, fmt.Errorf("angle %g: incident: %w", angleDeg, err)
	}

	if err := os.MkdirAll(sampleDir, 0755); err != nil {
		return nil, fmt.Errorf("angle %g: create sample dir: %w", angleDeg, err)
	}

	meta := &models.SampleMeta{
		AngleDeg:    angleDeg,
		InflowSpeed: dc.cfg.InflowSpeed,
		CenterX:     crop.CenterX,
		CenterY:     crop.CenterY,
		CropWidth:   crop.Width,
		CropHeight:  crop.Height,
		CropNx:      crop.Nx,
		CropNy:      crop.Ny,
		GridNx:      dc.cfg.Grid.Nx,
		GridNy:      dc.cfg.Grid.Ny,
		SliceCSV:    slicePath,
		SampleDir:   sampleDir,
	}

	if err := dc.writeArtifacts(sampleDir, cropped, incident, meta); err != nil {
		return nil, fmt.Errorf("angle %g: %w", angleDeg, err)
	}
	return meta, nil
}

func (dc *DatasetController) writeArtifacts(dir string, crop *models.CroppedField, incident *models.IncidentField, meta *models.SampleMeta) error {
	rasters := []struct {
		art  views.ArtifactType
		data []float64
	}{
		{views.ArtifactSimUx, crop.Ux},
		{views.ArtifactSimUy, crop.Uy},
		{views.ArtifactIncidentUx, incident.Ux},
		{views.ArtifactIncidentUy, incident.Uy},
	}
	for _, r := range rasters {
		path := filepath.Join(dir, r.art.FileName())
		if err := views.ExportRaster(path, r.data, crop.Nx, crop.Ny); err != nil {
			return fmt.Errorf("export %s: %w", r.art.FileName(), err)
		}
	}

	metaJSON, err := json.MarshalIndent(meta, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal meta: %w", err)
	}
	metaPath := filepath.Join(dir, views.ArtifactMeta.FileName())
	if err := os.WriteFile(metaPath, metaJSON, 0644); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}

	if dc.cfg.Heatmaps {
		title := fmt.Sprintf("Ux (θ=%g°)", meta.AngleDeg)
		if err := views.RenderHeatmap(filepath.Join(dir, views.ArtifactHeatmapUx.FileName()),
			title, crop.Ux, crop.Nx, crop.Ny); err != nil {
			return err
		}
		title = fmt.Sprintf("Uy (θ=%g°)", meta.AngleDeg)
		if err := views.RenderHeatmap(filepath.Join(dir, views.ArtifactHeatmapUy.FileName()),
			title, crop.Uy, crop.Nx, crop.Ny); err != nil {
			return err
		}
	}

	return nil
}
