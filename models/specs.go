// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UploadSpec describes a store request. Exactly one of FilePath and URL must
// be set; the CLI guarantees it and the request builder checks it again.
type UploadSpec struct {
	// FilePath is a local file sent as multipart field "file".
	FilePath string

	// URL is a remote resource the vault fetches itself.
	URL string

	// Password protects the stored file. Empty means unprotected.
	Password string

	// Expires is the retention hint understood by the vault (e.g. "1d", "30m").
	Expires string

	// HideFilename removes the original file name from the storage URL.
	HideFilename bool

	// OneTimeDownload asks the vault to delete the file after first access.
	OneTimeDownload bool
}

// DownloadSpec describes a content fetch, either by vault token or by the
// direct resource URL. Output may name a directory or an exact file.
type DownloadSpec struct {
	Token    string
	URL      string
	Output   string
	Password string
}

// PasswordSupplied reports whether the user passed a password.
func (s DownloadSpec) PasswordSupplied() bool {
	return s.Password != ""
}

// TokenSpec addresses a stored file for info and delete.
type TokenSpec struct {
	Token string
}

// ModifySpec describes a change of options for an already stored file.
// Nil or empty fields are left untouched by the vault.
type ModifySpec struct {
	Token            string
	Password         string
	PreviousPassword string
	CustomExpiry     string
	HideFilename     *bool
}

// Empty reports whether the spec carries no change at all.
func (s ModifySpec) Empty() bool {
	return s.Password == "" && s.PreviousPassword == "" && s.CustomExpiry == "" && s.HideFilename == nil
}
