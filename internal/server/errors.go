// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")
	errListen              = errors.New("error listening on address")
	errServe               = errors.New("error serving HTTP")
	errShutdown            = errors.New("error shutting down HTTP server")
)
