// Package onnx serves the two pretrained, frozen models over the ONNX
// runtime: the EfficientNet-B0 frame embedder and the CNN+BiLSTM shot
// classifier. Both are loaded once at startup and treated as read-only
// for the process lifetime.
package onnx

import (
	"encoding/json"
	"fmt"
	"os"

	ort "github.com/yalue/onnxruntime_go"
)

// Initialize sets up the shared ONNX runtime environment. Call once
// before creating sessions; pair with Destroy on shutdown.
func Initialize() error {
	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("initialize onnx runtime: %w", err)
	}
	return nil
}

func Destroy() {
	ort.DestroyEnvironment()
}

// Metadata describes an exported model's fixed tensor shapes. It is
// written next to the model file at export time.
type Metadata struct {
	InputShape  []int64 `json:"input_shape"`
	OutputShape []int64 `json:"output_shape"`
}

func loadMetadata(path string) (Metadata, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read metadata: %w", err)
	}

	var meta Metadata
	if err := json.Unmarshal(raw, &meta); err != nil {
		return Metadata{}, fmt.Errorf("parse metadata: %w", err)
	}
	return meta, nil
}

// session bundles an ONNX session with its pre-allocated input and
// output tensors, the way this runtime is fastest to drive. The
// tensors are reused across calls, so a session is not safe for
// concurrent Run; callers hold a mutex.
type session struct {
	sess   *ort.AdvancedSession
	input  *ort.Tensor[float32]
	output *ort.Tensor[float32]
}

func newSession(modelPath string, meta Metadata) (*session, error) {
	input, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("create input tensor: %w", err)
	}

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		input.Destroy()
		return nil, fmt.Errorf("create output tensor: %w", err)
	}

	sess, err := ort.NewAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"},
		[]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output},
		nil)
	if err != nil {
		input.Destroy()
		output.Destroy()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &session{sess: sess, input: input, output: output}, nil
}

func (s *session) close() {
	if s.input != nil {
		s.input.Destroy()
	}
	if s.output != nil {
		s.output.Destroy()
	}
	if s.sess != nil {
		s.sess.Destroy()
	}
}
