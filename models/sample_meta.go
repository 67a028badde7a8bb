package models

// SampleMeta is the traceability record written next to each
// configuration's arrays and into the batch-level samples.csv index.
// Downstream labeling reads angle and speed from here, never from
// file names.
type SampleMeta struct {
	AngleDeg    float64 `json:"angle_deg"`
	InflowSpeed float64 `json:"inflow_speed"`
	CenterX     float64 `json:"center_x"`
	CenterY     float64 `json:"center_y"`
	CropWidth   float64 `json:"crop_width"`
	CropHeight  float64 `json:"crop_height"`
	CropNx      int     `json:"crop_nx"`
	CropNy      int     `json:"crop_ny"`
	GridNx      int     `json:"grid_nx"`
	GridNy      int     `json:"grid_ny"`
	SliceCSV    string  `json:"slice_csv"`
	SampleDir   string  `json:"sample_dir"`
}

func (SampleMeta) CSVHeader() []string {
	return []string{
		"angle_deg", "inflow_speed", "center_x", "center_y",
		"crop_width", "crop_height", "crop_nx", "crop_ny",
		"grid_nx", "grid_ny", "slice_csv", "sample_dir",
	}
}

func (m *SampleMeta) CSVRow() []string {
	return []string{
		ftoa(m.AngleDeg, 2),
		ftoa(m.InflowSpeed, 4),
		ftoa(m.CenterX, 4),
		ftoa(m.CenterY, 4),
		ftoa(m.CropWidth, 4),
		ftoa(m.CropHeight, 4),
		itoa(m.CropNx),
		itoa(m.CropNy),
		itoa(m.GridNx),
		itoa(m.GridNy),
		m.SliceCSV,
		m.SampleDir,
	}
}
