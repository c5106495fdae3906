// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package backup

import "errors"

var (
	ErrEmptyBucket     = errors.New("backup bucket is not configured")
	ErrCreatingClient  = errors.New("error creating object storage client")
	ErrEnsuringBucket  = errors.New("error ensuring backup bucket exists")
	ErrUploadingObject = errors.New("error uploading backup object")
	ErrEncodingBackup  = errors.New("error encoding backup snapshot")
)
