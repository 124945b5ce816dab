package fairflow

import "github.com/fairflow/go-fairflow/pkg/fairflow/frame"

// SelectTrainingData chooses between the original and normalised training
// data. The normalised variant is returned only when requested AND
// supplied; requesting a variant that is absent is a configuration error.
func SelectTrainingData(useNormalized bool, data *frame.TrainingData) (*frame.Dataset, error) {
	if data == nil {
		return nil, &ConfigurationError{Stage: "train", Reason: "training data must be set"}
	}

	if useNormalized {
		if data.Normalized == nil {
			return nil, &ConfigurationError{Stage: "train", Reason: "normalized training data requested but not supplied"}
		}

		return data.Normalized, nil
	}

	if data.Original == nil {
		return nil, &ConfigurationError{Stage: "train", Reason: "original training data not supplied"}
	}

	return data.Original, nil
}
