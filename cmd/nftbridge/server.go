package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	log "github.com/ChainSafe/log15"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/chainx-org/NftBridge/chains/locator"
	"github.com/chainx-org/NftBridge/chains/xnft"
)

// server exposes the bridge operations over a small JSON API. The bridge
// itself is single-threaded; the mutex serializes requests onto it.
type server struct {
	mu       sync.Mutex
	bridge   *xnft.Bridge
	recorder *xnft.EventRecorder
	log      log.Logger
}

func newServer(bridge *xnft.Bridge, recorder *xnft.EventRecorder, logger log.Logger) *server {
	return &server{bridge: bridge, recorder: recorder, log: logger}
}

func (s *server) serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/register", s.handleRegister)
	mux.HandleFunc("/deposit", s.handleDeposit)
	mux.HandleFunc("/withdraw", s.handleWithdraw)
	mux.HandleFunc("/transfer", s.handleTransfer)
	mux.HandleFunc("/events", s.handleEvents)
	return http.ListenAndServe(addr, mux)
}

func (s *server) serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	err := http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
	if errors.Is(err, http.ErrServerClosed) {
		s.log.Info("Metrics server is shutting down")
	} else if err != nil {
		s.log.Error("Error serving metrics", "err", err)
	}
}

type junctionJSON struct {
	Type  string `json:"type"`
	Value uint64 `json:"value,omitempty"`
	Key   string `json:"key,omitempty"`
}

func (j junctionJSON) junction() (locator.Junction, error) {
	switch strings.ToLower(j.Type) {
	case "network":
		return locator.GlobalConsensus(locator.NetworkId(j.Value)), nil
	case "parachain":
		return locator.Parachain(uint32(j.Value)), nil
	case "pallet":
		return locator.PalletInstance(uint8(j.Value)), nil
	case "index":
		return locator.GeneralIndex(j.Value), nil
	case "key":
		data, err := hexBytes(j.Key)
		if err != nil {
			return locator.Junction{}, err
		}
		if len(data) > 32 {
			return locator.Junction{}, fmt.Errorf("junction key longer than 32 bytes")
		}
		return locator.GeneralKey(data), nil
	default:
		return locator.Junction{}, fmt.Errorf("unrecognized junction type %q", j.Type)
	}
}

type locationJSON struct {
	Parents  uint8          `json:"parents"`
	Interior []junctionJSON `json:"interior"`
}

func (l locationJSON) location() (locator.Location, error) {
	interior := make([]locator.Junction, 0, len(l.Interior))
	for _, jj := range l.Interior {
		j, err := jj.junction()
		if err != nil {
			return locator.Location{}, err
		}
		interior = append(interior, j)
	}
	return locator.NewLocation(l.Parents, interior...), nil
}

type instanceJSON struct {
	Type  string `json:"type"`
	Value uint64 `json:"value,omitempty"`
	Hex   string `json:"hex,omitempty"`
}

func (i instanceJSON) instance() (locator.AssetInstance, error) {
	switch strings.ToLower(i.Type) {
	case "index":
		return locator.Index(i.Value), nil
	case "array4", "array8", "array16", "array32":
		data, err := hexBytes(i.Hex)
		if err != nil {
			return locator.AssetInstance{}, err
		}
		width, _ := strconv.Atoi(strings.TrimPrefix(strings.ToLower(i.Type), "array"))
		if len(data) != width {
			return locator.AssetInstance{}, fmt.Errorf("expected %d bytes, got %d", width, len(data))
		}
		var b [32]byte
		copy(b[:], data)
		switch width {
		case 4:
			var a [4]byte
			copy(a[:], data)
			return locator.Array4(a), nil
		case 8:
			var a [8]byte
			copy(a[:], data)
			return locator.Array8(a), nil
		case 16:
			var a [16]byte
			copy(a[:], data)
			return locator.Array16(a), nil
		default:
			return locator.Array32(b), nil
		}
	default:
		return locator.AssetInstance{}, fmt.Errorf("unrecognized instance type %q", i.Type)
	}
}

type assetJSON struct {
	Location locationJSON `json:"location"`
	Instance instanceJSON `json:"instance"`
}

func (a assetJSON) asset() (locator.Asset, error) {
	loc, err := a.Location.location()
	if err != nil {
		return locator.Asset{}, err
	}
	instance, err := a.Instance.instance()
	if err != nil {
		return locator.Asset{}, err
	}
	return locator.NonFungibleAsset(locator.ConcreteId(loc), instance), nil
}

func hexBytes(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}

func accountLocation(s string) (locator.Location, error) {
	raw, err := hexBytes(s)
	if err != nil {
		return locator.Location{}, err
	}
	if len(raw) != 32 {
		return locator.Location{}, fmt.Errorf("account must be 32 bytes, got %d", len(raw))
	}
	var id [32]byte
	copy(id[:], raw)
	return locator.NewLocation(0, locator.AccountId32(id)), nil
}

func (s *server) respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (s *server) respondErr(w http.ResponseWriter, err error) {
	s.log.Warn("request failed", "err", err)
	s.respond(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
}

func decodeBody(r *http.Request, into interface{}) error {
	defer func() { _ = r.Body.Close() }()
	return json.NewDecoder(r.Body).Decode(into)
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Version   *uint32      `json:"version"`
		Location  locationJSON `json:"location"`
		ClassData string       `json:"class_data"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}

	loc, err := req.Location.location()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	version := locator.LatestVersion
	if req.Version != nil {
		version = *req.Version
	}
	data, err := hexBytes(req.ClassData)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.mu.Lock()
	classId, err := s.bridge.RegisterForeignAsset(
		xnft.RootOrigin(),
		locator.VersionedAssetId{Version: version, Id: locator.ConcreteId(loc)},
		data,
	)
	s.mu.Unlock()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]uint64{"class_id": uint64(classId)})
}

func (s *server) handleDeposit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Asset assetJSON `json:"asset"`
		To    string    `json:"to"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	asset, err := req.Asset.asset()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	to, err := accountLocation(req.To)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.mu.Lock()
	err = s.bridge.DepositAsset(asset, to)
	s.mu.Unlock()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *server) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Asset assetJSON `json:"asset"`
		From  string    `json:"from"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	asset, err := req.Asset.asset()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	from, err := accountLocation(req.From)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.mu.Lock()
	err = s.bridge.WithdrawAsset(asset, from)
	s.mu.Unlock()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Asset assetJSON `json:"asset"`
		From  string    `json:"from"`
		To    string    `json:"to"`
	}
	if err := decodeBody(r, &req); err != nil {
		s.respondErr(w, err)
		return
	}
	asset, err := req.Asset.asset()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	from, err := accountLocation(req.From)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	to, err := accountLocation(req.To)
	if err != nil {
		s.respondErr(w, err)
		return
	}

	s.mu.Lock()
	err = s.bridge.TransferAsset(asset, from, to)
	s.mu.Unlock()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *server) handleEvents(w http.ResponseWriter, r *http.Request) {
	n := 50
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.respondErr(w, err)
			return
		}
		n = parsed
	}

	s.mu.Lock()
	tail := s.recorder.Tail(n)
	out := make([]map[string]string, 0, len(tail))
	for _, event := range tail {
		out = append(out, map[string]string{
			"name":   event.Name(),
			"detail": fmt.Sprintf("%+v", event),
		})
	}
	s.mu.Unlock()

	s.respond(w, http.StatusOK, out)
}
