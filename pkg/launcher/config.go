package launcher

// Arguments holds the configuration options for one combiner launch.
type Arguments struct {
	DataPath              string // Base directory for prediction shards.
	InputDataPattern      string // Glob locating the source video-feature TFRecord shards.
	PredictionDataPattern string // Glob locating the prediction TFRecord shards to combine.
	OutputDir             string // Destination directory for the combined output shards.
	BatchSize             int    // Records the combiner processes per batch.
	FileSize              int    // Target record count per combined output shard.
	Program               string // Path or name of the external combiner program.
	DryRun                bool   // If true, print the resolved invocation instead of spawning it.
}

const (
	defaultDataPath         = "/Youtube-8M/model_predictions/train"
	defaultInputDataPattern = "/Youtube-8M/data/video/train/train*.tfrecord"
	defaultProgram          = "inference-combine-tfrecords-video.py"
	defaultBatchSize        = 1024
	defaultFileSize         = 4096

	predictionPatternSuffix = "/distillation/ensemble_mean_model/prediction*.tfrecord"
	outputDirSuffix         = "/distillation/combined"
)

// Defaults returns the arguments of the original launch configuration.
// PredictionDataPattern and OutputDir are left empty so Derive can fill
// them from DataPath.
func Defaults() *Arguments {
	return &Arguments{
		DataPath:         defaultDataPath,
		InputDataPattern: defaultInputDataPattern,
		Program:          defaultProgram,
		BatchSize:        defaultBatchSize,
		FileSize:         defaultFileSize,
	}
}

// Derive fills the options that were left empty from DataPath. Plain string
// concatenation, not filepath.Join: the combiner must receive the pattern
// exactly as assembled, trailing slashes and all.
func (a *Arguments) Derive() {
	if a.PredictionDataPattern == "" {
		a.PredictionDataPattern = a.DataPath + predictionPatternSuffix
	}
	if a.OutputDir == "" {
		a.OutputDir = a.DataPath + outputDirSuffix
	}
}
