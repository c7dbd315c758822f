package queryrunner

import (
	"sync"

	"github.com/ryogrid/QueryRunner/common"
)

type queryRequest struct {
	reqId    *uint64
	queryStr *string
	callerCh *chan *reqResult
}

// RequestManager queues queries and runs them in arrival order, each on its
// own goroutine, with at most common.MaxQueryThreadNum running at once.
type RequestManager struct {
	qr                *QueryRunner
	nextReqId         uint64
	execQue           []*queryRequest
	queMutex          *sync.Mutex
	curExectingReqNum uint64
	inCh              *chan *reqResult
	isExecutionActive bool
	stoppedCh         chan struct{}
}

func NewRequestManager(qr *QueryRunner) *RequestManager {
	ch := make(chan *reqResult, 100)
	return &RequestManager{qr, 0, make([]*queryRequest, 0), new(sync.Mutex), 0, &ch, true, make(chan struct{})}
}

func (reqManager *RequestManager) AppendRequest(queryStr *string) *chan *reqResult {
	reqManager.queMutex.Lock()

	qr := new(queryRequest)
	tmpId := reqManager.nextReqId
	qr.reqId = &tmpId
	reqManager.nextReqId++
	qr.queryStr = queryStr

	retCh := make(chan *reqResult, 1)
	qr.callerCh = &retCh

	if !reqManager.isExecutionActive {
		reqManager.queMutex.Unlock()
		retCh <- &reqResult{common.NewServerStoppedError(), nil, qr.reqId, queryStr, &retCh}
		return &retCh
	}

	reqManager.execQue = append(reqManager.execQue, qr)
	reqManager.queMutex.Unlock()

	// wake up execution thread
	*reqManager.inCh <- nil

	return &retCh
}

// caller must having lock of queMutex
func (reqManager *RequestManager) RetrieveRequest() *queryRequest {
	retVal := reqManager.execQue[0]
	reqManager.execQue = reqManager.execQue[1:]
	return retVal
}

func (reqManager *RequestManager) StartTh() {
	go reqManager.Run()
}

// StopTh rejects new requests, waits for the running ones to finish and
// answers the queued ones with an error.
func (reqManager *RequestManager) StopTh() {
	reqManager.queMutex.Lock()
	if !reqManager.isExecutionActive {
		reqManager.queMutex.Unlock()
		return
	}
	reqManager.isExecutionActive = false
	reqManager.queMutex.Unlock()

	*reqManager.inCh <- nil
	<-reqManager.stoppedCh
}

// caller must having lock of queMutex
func (reqManager *RequestManager) executeQuedReqs() {
	for len(reqManager.execQue) > 0 && reqManager.curExectingReqNum < common.MaxQueryThreadNum {
		req := reqManager.RetrieveRequest()
		go reqManager.qr.ExecuteQueryForReqTh(reqManager.inCh, req)
		reqManager.curExectingReqNum++
	}
}

func (reqManager *RequestManager) Run() {
	for {
		recvVal := <-*reqManager.inCh
		reqManager.queMutex.Lock()
		if recvVal != nil { // receive result
			reqManager.curExectingReqNum--
			*recvVal.callerCh <- recvVal
		}

		// check stop signal or new request
		if !reqManager.isExecutionActive {
			if reqManager.curExectingReqNum == 0 {
				for _, req := range reqManager.execQue {
					*req.callerCh <- &reqResult{common.NewServerStoppedError(), nil, req.reqId, req.queryStr, req.callerCh}
				}
				reqManager.execQue = nil
				reqManager.queMutex.Unlock()
				close(reqManager.stoppedCh)
				return
			}
			reqManager.queMutex.Unlock()
			continue
		}
		reqManager.executeQuedReqs()
		reqManager.queMutex.Unlock()
	}
}
