// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package plan

import (
	"encoding/json"
	"fmt"

	"github.com/zeebo/xxh3"
)

// ComputeFingerprint hashes the canonical JSON of the plan with Root and
// Fingerprint cleared.
func ComputeFingerprint(p *Plan) (string, error) {
	canonical := *p
	canonical.Root = ""
	canonical.Fingerprint = ""

	data, err := json.Marshal(&canonical)
	if err != nil {
		return "", fmt.Errorf("failed to encode plan for fingerprinting: %w", err)
	}
	h := xxh3.Hash128(data)
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo), nil
}

// Seal computes and stores the plan's fingerprint.
func (p *Plan) Seal() error {
	fp, err := ComputeFingerprint(p)
	if err != nil {
		return err
	}
	p.Fingerprint = fp
	return nil
}
