/*
NAME
  builder.go

DESCRIPTION
  builder.go implements the step-builder used to assemble a Description:
  mandatory identity fields as constructor arguments, everything else as
  a BuilderOption, following the same functional-option shape as
  container/mts's NewEncoder/PacketBasedPSI/MediaType/Rate.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package edid

import (
	"github.com/pkg/errors"

	"github.com/ausocean/edid/base"
	"github.com/ausocean/edid/cta861"
	"github.com/ausocean/edid/descriptor"
	"github.com/ausocean/edid/value"
)

// Builder assembles a Description step by step. Options mutate the
// builder only on success; the first option to fail stops further
// mutation and is returned from Build.
type Builder struct {
	release value.Release
	base    base.BaseBlock
	ext     *cta861.Extension
	err     error
}

// BuilderOption configures a Builder. Options are applied in NewBuilder
// and may also be passed individually to Builder.Apply.
type BuilderOption func(*Builder) error

// NewBuilder starts a Builder for the given release with the mandatory
// manufacturer identity fields, applying any further options in order.
func NewBuilder(release value.Release, manufacturer string, product uint16, serial uint32, opts ...BuilderOption) *Builder {
	b := &Builder{release: release}
	mfg, err := value.NewManufacturerID(manufacturer)
	if err != nil {
		b.err = err
		return b
	}
	b.base.Release = release
	b.base.Manufacturer = mfg
	b.base.Product = value.ProductCode(product)
	b.base.Serial = value.SerialNumber(serial)
	return b.Apply(opts...)
}

// Apply applies further options to b, stopping at the first error.
func (b *Builder) Apply(opts ...BuilderOption) *Builder {
	if b.err != nil {
		return b
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			b.err = err
			return b
		}
	}
	return b
}

// Build performs the remaining cross-field checks (via base.Encode's
// validation path, exercised through a trial Encode) and returns the
// immutable Description.
func (b *Builder) Build() (Description, error) {
	if b.err != nil {
		return Description{}, b.err
	}
	desc := Description{Base: b.base, Extension: b.ext}
	if _, err := Encode(desc); err != nil {
		return Description{}, errors.Wrap(err, "edid: builder produced an invalid description")
	}
	return desc, nil
}

// WithDateYearOnly declares only the year of manufacture.
func WithDateYearOnly(year int) BuilderOption {
	return func(b *Builder) error {
		d, err := value.NewDateYearOnly(year)
		if err != nil {
			return err
		}
		b.base.Date = d
		return nil
	}
}

// WithDateWeekYear declares a specific week and year of manufacture.
func WithDateWeekYear(year, week int) BuilderOption {
	return func(b *Builder) error {
		d, err := value.NewDateWeekYear(b.release, year, week)
		if err != nil {
			return err
		}
		b.base.Date = d
		return nil
	}
}

// WithDateModelYear declares a model year in place of a manufacture date
// (R4 only).
func WithDateModelYear(modelYear int) BuilderOption {
	return func(b *Builder) error {
		d, err := value.NewDateModelYear(b.release, modelYear)
		if err != nil {
			return err
		}
		b.base.Date = d
		return nil
	}
}

// WithVideoInput sets the video input definition.
func WithVideoInput(v value.VideoInput) BuilderOption {
	return func(b *Builder) error {
		b.base.VideoInput = v
		return nil
	}
}

// WithDisplayDimensions sets the physical display size in centimetres.
func WithDisplayDimensions(hCm, vCm int) BuilderOption {
	return func(b *Builder) error {
		s, err := value.NewDisplayDimensions(hCm, vCm)
		if err != nil {
			return err
		}
		b.base.DisplaySize = s
		return nil
	}
}

// WithGamma sets the display gamma.
func WithGamma(g float64) BuilderOption {
	return func(b *Builder) error {
		gm, err := value.NewGamma(g)
		if err != nil {
			return err
		}
		b.base.Gamma = gm
		return nil
	}
}

// WithFeatureSupport sets the feature-support bitmap.
func WithFeatureSupport(fs value.FeatureSupport) BuilderOption {
	return func(b *Builder) error {
		validated, err := value.NewFeatureSupport(b.release, fs)
		if err != nil {
			return err
		}
		b.base.Feature = validated
		return nil
	}
}

// WithChromaticity sets the CIE 1931 chromaticity coordinates.
func WithChromaticity(c value.Chromaticity) BuilderOption {
	return func(b *Builder) error {
		validated, err := value.NewChromaticity(c)
		if err != nil {
			return err
		}
		b.base.Chromaticity = validated
		return nil
	}
}

// WithEstablishedTimings sets the legacy established-timings bitmap.
func WithEstablishedTimings(modes ...value.EstablishedMode) BuilderOption {
	return func(b *Builder) error {
		b.base.Established = value.NewEstablishedTimings(modes...)
		return nil
	}
}

// WithStandardTiming appends a standard-timing slot, up to
// value.MaxStandardTimings.
func WithStandardTiming(hActive int, aspect value.AspectRatio, refreshHz int) BuilderOption {
	return func(b *Builder) error {
		if len(b.base.Standard) >= value.MaxStandardTimings {
			return &value.SlotOverflow{Region: "standard_timings", Needed: len(b.base.Standard) + 1, Available: value.MaxStandardTimings}
		}
		st, err := value.NewStandardTiming(hActive, aspect, refreshHz)
		if err != nil {
			return err
		}
		b.base.Standard = append(b.base.Standard, st)
		return nil
	}
}

// WithDescriptor places d in the given descriptor slot (0-3).
func WithDescriptor(slot int, d descriptor.Descriptor) BuilderOption {
	return func(b *Builder) error {
		if slot < 0 || slot >= base.MaxDescriptors {
			return &value.InvalidField{Field: "descriptor.slot", Reason: "must be 0..3"}
		}
		for len(b.base.Descriptors) <= slot {
			b.base.Descriptors = append(b.base.Descriptors, nil)
		}
		b.base.Descriptors[slot] = d
		return nil
	}
}

// WithExtension attaches a CTA-861 extension block to the description.
func WithExtension(ext cta861.Extension) BuilderOption {
	return func(b *Builder) error {
		b.ext = &ext
		return nil
	}
}
