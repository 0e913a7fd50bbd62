// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message texts of the vault client.
//
// Keeping them in one place keeps the wording consistent between the
// response interpreter, the renderer and the tests.
package app

const (
	// MsgHeader is printed above every text-mode output.
	MsgHeader = "--= Waifu Vault Client =--"

	MsgFileExists   = "File exists!"
	MsgFileStored   = "File stored successfully!"
	MsgFileModified = "File updated successfully!"

	MsgStoredAt          = "It is stored at "
	MsgUniqueToken       = "It has the unique token: "
	MsgProtectedPrefix   = "It is a "
	MsgUnprotectedPrefix = "It is an "
	MsgFileSuffix        = " file"
	MsgProtected         = "PROTECTED"
	MsgUnprotected       = "UNPROTECTED"
	MsgAvailableFor      = "It is available for "
	MsgOneTimePrefix     = "It will be "
	MsgOneTimeDeleted    = "DELETED"
	MsgOneTimeSuffix     = " after download"

	MsgBadResponse   = "Received a bad response from API: "
	MsgProbableCause = "This is probably due to: "
	MsgDetailPrefix  = "  - "

	MsgFileDeleted    = "File deleted successfully!"
	MsgFileNotDeleted = "File was NOT deleted successfully..."

	// MsgIncorrectPassword is shown when the vault answers 403 to a content
	// request that carried a password.
	MsgIncorrectPassword = "The password given for this file is incorrect!"

	// MsgPasswordRequired is shown when a protected file is requested
	// without a password.
	MsgPasswordRequired = "This file is password protected and needs a password to download!"

	MsgDownloadedTo = "File downloaded successfully and stored at "

	// MsgTransportFailure prefixes the error of a request that never got an
	// HTTP answer.
	MsgTransportFailure = "Could not reach the vault: "
)

// Failure names used for service errors detected on the client side.
const (
	NameIncorrectPassword = "INCORRECT_PASSWORD"
	NamePasswordRequired  = "PASSWORD_REQUIRED"
)
