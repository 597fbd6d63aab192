/*
 * Copyright 2025 The JSONRef Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package log provides semantic log functions for the jsonref binaries.
package log // import "jsonref.io/jsonref/util/log"

import "log"

// Info logs at information level.
func Info(args ...any) { log.Println(args...) }

// Infof logs at information level with formatting.
func Infof(msg string, args ...any) { log.Printf(msg, args...) }

// Warning logs at warning level.
func Warning(args ...any) { log.Print(append([]any{"WARNING:"}, args...)) }

// Warningf logs at warning level with formatting.
func Warningf(msg string, args ...any) { log.Printf("WARNING: "+msg, args...) }

// Error logs at error level.
func Error(args ...any) { log.Print(append([]any{"ERROR:"}, args...)) }

// Errorf logs at error level with formatting.
func Errorf(msg string, args ...any) { log.Printf("ERROR: "+msg, args...) }

// Fatal logs at error level and exits the program.
func Fatal(args ...any) { log.Fatal(args...) }

// Fatalf logs at error level with formatting and exits the program.
func Fatalf(msg string, args ...any) { log.Fatalf(msg, args...) }

// Exit logs at error level and exits the program.
func Exit(args ...any) { log.Fatal(args...) }

// Exitf logs at error level with formatting and exits the program.
func Exitf(msg string, args ...any) { log.Fatalf(msg, args...) }
