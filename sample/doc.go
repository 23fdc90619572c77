/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package sample draws concrete values for parsed parameter
// definitions from named probability distributions.
//
// Package sample provides a Registry mapping distribution kinds to
// sampling functions, populated once with the locally implemented
// kinds (constant, choice) and the kinds backed by gonum
// distributions (uniform, normal, randint, beta, poisson).
// Its primary purpose is turning a schema.ParameterSpace into a
// name-to-value mapping, reproducibly for a seeded random source.
//
// The random source is supplied by the caller and is only borrowed
// for the duration of one call; a fixed seed and a fixed space
// always produce identical results.
package sample
