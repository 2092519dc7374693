// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package platform enumerates the deployment platforms and minimum OS
// versions a package may declare. Only the enumerated constants are accepted;
// anything else is reported as an *UnsupportedPlatformError so the build
// aborts before any path is inspected.
package platform
