package launcher

import "fmt"

// CommandLine renders the argument vector passed to the combiner. The flag
// order matches the original invocation. DataPath itself never reaches the
// child; it only steers Derive.
func (a *Arguments) CommandLine() []string {
	return []string{
		fmt.Sprintf("--output_dir=%s", a.OutputDir),
		fmt.Sprintf("--input_data_pattern=%s", a.InputDataPattern),
		fmt.Sprintf("--prediction_data_pattern=%s", a.PredictionDataPattern),
		fmt.Sprintf("--batch_size=%d", a.BatchSize),
		fmt.Sprintf("--file_size=%d", a.FileSize),
	}
}
