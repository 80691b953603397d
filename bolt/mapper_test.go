package bolt

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/antobinary/bbb-pads/registry"
)

func createMapper(t *testing.T) (*Mapper, func()) {
	tmpFile, err := ioutil.TempFile("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}

	filename := tmpFile.Name()
	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		os.Remove(filename)
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}

	mapper := &Mapper{Driver: driver}
	return mapper, func() {
		driver.Close()
		os.Remove(filename)
	}
}

func TestMapper_Users(t *testing.T) {
	mapper, f := createMapper(t)
	defer f()

	if err := mapper.RegisterUser("m1", "u1", "a.xyz"); err != nil {
		t.Fatal("error registering:", err)
	}

	ref, err := mapper.ResolveUser("a.xyz")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref.MeetingID != "m1" || ref.UserID != "u1" {
		t.Fatalf("incorrect ref retrieved: got %+v", ref)
	}

	// Unknown author resolves to the zero value.
	ref, err = mapper.ResolveUser("a.unknown")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref != (registry.UserRef{}) {
		t.Fatalf("expected zero ref, got %+v", ref)
	}

	if err := mapper.UnregisterUser("a.xyz"); err != nil {
		t.Fatal("error unregistering:", err)
	}
	ref, err = mapper.ResolveUser("a.xyz")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref != (registry.UserRef{}) {
		t.Fatalf("expected zero ref after unregister, got %+v", ref)
	}

	// Unregistering twice is fine.
	if err := mapper.UnregisterUser("a.xyz"); err != nil {
		t.Fatal("error unregistering twice:", err)
	}
}

func TestMapper_Pads(t *testing.T) {
	mapper, f := createMapper(t)
	defer f()

	if err := mapper.RegisterPad("m1", "g1", "g1$notes"); err != nil {
		t.Fatal("error registering:", err)
	}

	ref, err := mapper.ResolvePad("g1$notes")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref.MeetingID != "m1" || ref.GroupID != "g1" {
		t.Fatalf("incorrect ref retrieved: got %+v", ref)
	}

	if err := mapper.UnregisterPad("g1$notes"); err != nil {
		t.Fatal("error unregistering:", err)
	}
	ref, err = mapper.ResolvePad("g1$notes")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref != (registry.PadRef{}) {
		t.Fatalf("expected zero ref after unregister, got %+v", ref)
	}
}

func TestMapper_SurvivesReopen(t *testing.T) {
	tmpFile, err := ioutil.TempFile("", "")
	if err != nil {
		t.Fatal("could not create tmp file:", err)
	}
	filename := tmpFile.Name()
	defer os.Remove(filename)

	driver := &Driver{}
	if err := driver.Open(filename); err != nil {
		t.Fatalf("could not open bolt on file %s: %v", filename, err)
	}
	mapper := &Mapper{Driver: driver}
	if err := mapper.RegisterPad("m1", "g1", "g1$captions"); err != nil {
		t.Fatal("error registering:", err)
	}
	if err := driver.Close(); err != nil {
		t.Fatal("error closing:", err)
	}

	if err := driver.Open(filename); err != nil {
		t.Fatalf("could not reopen bolt on file %s: %v", filename, err)
	}
	defer driver.Close()

	ref, err := mapper.ResolvePad("g1$captions")
	if err != nil {
		t.Fatal("error resolving:", err)
	} else if ref.GroupID != "g1" {
		t.Fatalf("mapping did not survive reopen: got %+v", ref)
	}
}
