// Package mfdfa extracts multifractal scaling descriptors from the output
// of Multifractal Detrended Fluctuation Analysis — from the fluctuation
// function itself up to the singularity spectrum.
//
// 🚀 What is mfdfa?
//
//	A small, deterministic numeric library that brings together:
//		• Fluctuation functions: the Kantelhardt MFDFA procedure F_q(s)
//		• Generalised Hurst exponents: log-log slopes h(q) per moment order
//		• Scaling exponents: τ(q) = q·h(q) − 1
//		• Singularity spectrum: (α, f(α)) via a discrete Legendre transform
//		• Plot adapters: ready-made (α, f), (q, τ), (q, h) line plots
//
// ✨ Why choose mfdfa?
//
//   - Pure functions – immutable inputs, freshly allocated outputs, no globals
//   - Explicit errors – sentinel errors matched with errors.Is, no panics
//   - Honest numerics – cleaned moment orders, validated shapes and fit ranges
//   - Built on gonum – regression, linear algebra and plotting from one stack
//
// Everything is organized under three subpackages:
//
//	fluct/     — MFDFA fluctuation-function computation (profile, detrend, F_q(s))
//	spectrum/  — h(q), τ(q) and the singularity spectrum (α, f(α))
//	mfdfaplot/ — plotting conveniences for the three descriptor pairs
//
// Quick sketch of the pipeline:
//
//	signal ──fluct──▶ F_q(s) ──spectrum──▶ h(q) ─▶ τ(q) ─▶ (α, f(α))
//
// Dive into the per-package docs and example tests for full walkthroughs.
//
//	go get github.com/multifract/mfdfa/spectrum
package mfdfa
